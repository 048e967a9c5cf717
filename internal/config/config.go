package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Notifier is the environment the notifier entrypoint runs with.
type Notifier struct {
	ServiceName  string
	ServiceURL   string
	SecretName   string
	SecretRegion string
}

func NotifierFromEnv() Notifier {
	return Notifier{
		ServiceName:  os.Getenv("SERVICE_NAME"),
		ServiceURL:   os.Getenv("SERVICE_URL"),
		SecretName:   os.Getenv("SLACK_SECRET_NAME"),
		SecretRegion: os.Getenv("SLACK_SECRET_REGION"),
	}
}

// Local configures the local server mode.
type Local struct {
	Addr          string        // API bind address
	LogDir        string        // logs directory
	AdminAPIKeys  []string      // keys allowed to trigger probes; empty means open (dev)
	ProbeTimeout  time.Duration // HTTP client timeout for probes
	ProbeFile     string        // optional YAML probe definition for the background runner
	ProbeInterval time.Duration // background runner interval; 0 disables it
	MetricsRegion string        // CloudWatch region; empty uses the SDK environment
	DryRun        bool          // record metrics in memory instead of CloudWatch
}

func LocalFromEnv() Local {
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	probeTimeout := 10 * time.Second
	if v := os.Getenv("PROBE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			probeTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	probeInterval := time.Duration(0)
	if v := os.Getenv("PROBE_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			probeInterval = time.Duration(ms) * time.Millisecond
		}
	}

	return Local{
		Addr:          addr,
		LogDir:        logDir,
		AdminAPIKeys:  splitList(os.Getenv("ADMIN_API_KEYS")),
		ProbeTimeout:  probeTimeout,
		ProbeFile:     os.Getenv("PROBE_FILE"),
		ProbeInterval: probeInterval,
		MetricsRegion: os.Getenv("METRICS_REGION"),
		DryRun:        os.Getenv("DRY_RUN") == "1" || strings.EqualFold(os.Getenv("DRY_RUN"), "true"),
	}
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
