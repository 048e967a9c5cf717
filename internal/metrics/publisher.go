package metrics

import "context"

// Publisher sends a single data point to a metrics sink.
type Publisher interface {
	Publish(ctx context.Context, namespace, name string, value float64) error
}
