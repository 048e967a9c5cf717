package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the local server mode. The CloudWatch
// health metric is the product; these counters are for watching the
// monitor itself.
var (
	// ProbesTotal counts completed probes by outcome ("healthy"/"unhealthy").
	ProbesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monitor_probes_total",
		Help: "Total probes run by outcome",
	}, []string{"outcome"})

	// ProbeDuration measures end-to-end probe latency.
	ProbeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "monitor_probe_duration_seconds",
		Help:    "Probe duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// PublishErrors counts failed metric publications.
	PublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monitor_publish_errors_total",
		Help: "Total failures publishing the health metric",
	})
)

// OutcomeLabel maps a probe value to the ProbesTotal label.
func OutcomeLabel(value int) string {
	if value == 0 {
		return "healthy"
	}
	return "unhealthy"
}
