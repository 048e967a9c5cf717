package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/servicemonitor/internal/metrics"
)

const (
	healthy   = 0
	unhealthy = 1

	// maxBody caps how much of a response we read for JSON assertions.
	maxBody = 4 << 20
)

// Prober runs one health probe per invocation and publishes at most one
// metric point. Health failures (transport errors, bad status, failed
// assertions) become a value-1 data point and never an error; only a
// failure to publish is returned to the caller.
type Prober struct {
	Client    *http.Client
	Publisher metrics.Publisher
	Logger    *zap.Logger
}

func NewProber(pub metrics.Publisher, timeout time.Duration, logger *zap.Logger) *Prober {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prober{
		Client:    &http.Client{Timeout: timeout},
		Publisher: pub,
		Logger:    logger,
	}
}

// Run issues the probe and publishes its outcome. Checks run in a fixed
// order and the first failure wins: transport, status, JSON fields,
// headers. On success a point is published only when PublishOnSuccess
// is set.
//
// A probe cut short by caller cancellation has no verdict either way:
// nothing is published and the context error is returned. Timeouts stay
// health failures.
func (p *Prober) Run(ctx context.Context, req Request) (Outcome, error) {
	out := Outcome{Namespace: req.MetricNamespace, MetricName: req.MetricName}

	value, reason, err := p.evaluate(ctx, req)
	if err != nil {
		p.Logger.Info("probe_cancelled", zap.String("url", req.URL))
		return out, err
	}
	out.Value, out.Reason = value, reason

	if out.Value == unhealthy {
		p.Logger.Info("probe_unhealthy",
			zap.String("url", req.URL),
			zap.String("reason", out.Reason),
		)
		return out, p.publish(ctx, &out)
	}

	p.Logger.Info("probe_healthy", zap.String("url", req.URL))
	if req.PublishOnSuccess {
		return out, p.publish(ctx, &out)
	}
	return out, nil
}

func (p *Prober) publish(ctx context.Context, out *Outcome) error {
	if err := p.Publisher.Publish(ctx, out.Namespace, out.MetricName, float64(out.Value)); err != nil {
		return fmt.Errorf("publish %s/%s: %w", out.Namespace, out.MetricName, err)
	}
	out.Published = true
	return nil
}

func (p *Prober) evaluate(ctx context.Context, req Request) (int, string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return unhealthy, "bad url: " + err.Error(), nil
	}

	resp, err := p.Client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return healthy, "", err
		}
		return unhealthy, "request failed: " + err.Error(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return unhealthy, fmt.Sprintf("status %d", resp.StatusCode), nil
	}

	// JSON assertions run before header assertions; the first mismatch
	// short-circuits everything after it.
	if len(req.ExpectedJSONFields) > 0 {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return healthy, "", err
			}
			return unhealthy, "read body: " + err.Error(), nil
		}
		var parsed map[string]any
		if err := json.Unmarshal(body, &parsed); err != nil {
			return unhealthy, "invalid json body: " + err.Error(), nil
		}
		for key, want := range req.ExpectedJSONFields {
			got, ok := parsed[key]
			if !ok {
				// A missing key counts as a failed assertion, same as
				// any other mismatch.
				return unhealthy, fmt.Sprintf("json key %q missing", key), nil
			}
			if !valueEqual(got, want) {
				return unhealthy, fmt.Sprintf("json key %q = %v, want %v", key, got, want), nil
			}
		}
	}

	if len(req.ExpectedHeaders) > 0 {
		for key, want := range req.ExpectedHeaders {
			if got := resp.Header.Get(key); got != want {
				return unhealthy, fmt.Sprintf("header %q = %q, want %q", key, got, want), nil
			}
		}
	}

	return healthy, "", nil
}

// valueEqual compares a decoded body value with an expected one.
// Expected values may come from JSON (numbers as float64) or YAML
// (numbers as int), so numerics compare by value.
func valueEqual(got, want any) bool {
	if reflect.DeepEqual(got, want) {
		return true
	}
	gf, gok := toFloat(got)
	wf, wok := toFloat(want)
	return gok && wok && gf == wf
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
