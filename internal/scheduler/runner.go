package scheduler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/servicemonitor/internal/metrics"
	"github.com/hamed0406/servicemonitor/internal/probe"
)

// Runner re-runs a fixed probe on an interval. Local mode only; in the
// deployed setup the platform scheduler owns the cadence.
type Runner struct {
	Logger   *zap.Logger
	Prober   *probe.Prober
	Request  probe.Request
	Interval time.Duration
	Timeout  time.Duration
}

func NewRunner(logger *zap.Logger, p *probe.Prober, req probe.Request, interval, timeout time.Duration) *Runner {
	if interval < 0 {
		interval = 0
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Runner{
		Logger:   logger,
		Prober:   p,
		Request:  req,
		Interval: interval,
		Timeout:  timeout,
	}
}

// Run starts the loop: an immediate pass, then one per tick. Stops when
// ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	if r.Interval == 0 {
		r.Logger.Info("runner_disabled")
		return
	}
	t := time.NewTicker(r.Interval)
	defer t.Stop()

	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("runner_stopped")
			return
		case <-t.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	start := time.Now()
	out, err := r.Prober.Run(cctx, r.Request)
	if errors.Is(err, context.Canceled) {
		// shutdown while in flight; nothing was published
		return
	}
	metrics.ProbeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PublishErrors.Inc()
		r.Logger.Warn("runner_publish_error",
			zap.String("url", r.Request.URL),
			zap.Error(err),
		)
		return
	}
	metrics.ProbesTotal.WithLabelValues(metrics.OutcomeLabel(out.Value)).Inc()

	r.Logger.Debug("runner_probe",
		zap.String("url", r.Request.URL),
		zap.Int("value", out.Value),
		zap.Bool("published", out.Published),
		zap.String("reason", out.Reason),
	)
}
