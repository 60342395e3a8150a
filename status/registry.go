// Package status holds session counters written by the simulation loop and read by reporters
// Writers cache metric pointers once; reads and writes after that are lock-free
package status

import (
	"log/slog"
	"sync/atomic"
)

// Registry is the metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Labels *MetricMap[atomic.Value]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Labels: NewMetricMap[atomic.Value](),
	}
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	return r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}

// Attrs flattens every metric into log attributes, ints then floats then labels, each in key order
func (r *Registry) Attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, r.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		attrs = append(attrs, slog.Int64(key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		attrs = append(attrs, slog.Float64(key, v.Get()))
	})
	r.Labels.Range(func(key string, v *atomic.Value) {
		if s, ok := v.Load().(string); ok {
			attrs = append(attrs, slog.String(key, s))
		}
	})
	return attrs
}
