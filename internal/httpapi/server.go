package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hamed0406/servicemonitor/internal/httpapi/middleware"
	"github.com/hamed0406/servicemonitor/internal/metrics"
	"github.com/hamed0406/servicemonitor/internal/probe"
)

type Server struct {
	Logger    *zap.Logger
	Prober    *probe.Prober
	AdminKeys []string
}

func NewServer(l *zap.Logger, p *probe.Prober, adminKeys []string) *Server {
	return &Server{Logger: l, Prober: p, AdminKeys: adminKeys}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireKey(s.AdminKeys))
		r.Post("/api/probes", s.handleRunProbe)
	})

	return r
}

func (s *Server) handleRunProbe(w http.ResponseWriter, r *http.Request) {
	var req probe.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}
	if req.MetricName == "" || req.MetricNamespace == "" {
		http.Error(w, "metric_name and metric_namespace are required", http.StatusBadRequest)
		return
	}

	start := time.Now()
	out, err := s.Prober.Run(r.Context(), req)
	if errors.Is(err, context.Canceled) {
		// caller went away mid-probe; nothing was published
		return
	}
	metrics.ProbeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PublishErrors.Inc()
		s.Logger.Error("probe_publish_error", zap.String("url", req.URL), zap.Error(err))
		http.Error(w, "metric publish failed", http.StatusBadGateway)
		return
	}
	metrics.ProbesTotal.WithLabelValues(metrics.OutcomeLabel(out.Value)).Inc()

	s.Logger.Info("probe_run",
		zap.String("url", req.URL),
		zap.Int("value", out.Value),
		zap.Bool("published", out.Published),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
