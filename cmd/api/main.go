package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/servicemonitor/internal/config"
	"github.com/hamed0406/servicemonitor/internal/httpapi"
	"github.com/hamed0406/servicemonitor/internal/logging"
	"github.com/hamed0406/servicemonitor/internal/metrics"
	"github.com/hamed0406/servicemonitor/internal/probe"
	"github.com/hamed0406/servicemonitor/internal/scheduler"
)

func main() {
	cfg := config.LocalFromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var pub metrics.Publisher
	if cfg.DryRun {
		pub = metrics.NewMemory()
	} else {
		cw, err := metrics.NewCloudWatch(cfg.MetricsRegion)
		if err != nil {
			log.Fatal(err)
		}
		pub = cw
	}

	prober := probe.NewProber(pub, cfg.ProbeTimeout, logger)
	api := httpapi.NewServer(logger, prober, cfg.AdminAPIKeys)

	if cfg.ProbeFile != "" {
		req, err := probe.LoadFile(cfg.ProbeFile)
		if err != nil {
			log.Fatal(err)
		}
		runner := scheduler.NewRunner(logger, prober, req, cfg.ProbeInterval, cfg.ProbeTimeout)
		go runner.Run(context.Background())
	}

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
