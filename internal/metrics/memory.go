package metrics

import (
	"context"
	"sync"
)

// Point is one recorded data point.
type Point struct {
	Namespace string
	Name      string
	Value     float64
}

// Memory records points in memory instead of sending them anywhere.
// Used by tests and the CLI's dry-run mode.
type Memory struct {
	mu     sync.Mutex
	points []Point
}

func NewMemory() *Memory {
	return &Memory{points: make([]Point, 0, 8)}
}

func (m *Memory) Publish(ctx context.Context, namespace, name string, value float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.points = append(m.points, Point{Namespace: namespace, Name: name, Value: value})
	return nil
}

// Points returns a copy of everything published so far.
func (m *Memory) Points() []Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Point, len(m.points))
	copy(out, m.points)
	return out
}
