// Package metrics exports vector buffer activity to Prometheus.
//
// A Collector implements vector.Observer; attach it through
// vector.Options.Observer on every vector whose buffers should be counted.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/joshuapare/rawvec/pkg/types"
)

// Collector counts capacity changes and refused allocations.
type Collector struct {
	relocations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	capacity    *prometheus.HistogramVec
}

// NewCollector registers the collector's metrics on reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Collector{
		relocations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rawvec_relocations_total",
				Help: "Total number of buffer capacity changes",
			},
			[]string{"op", "policy"},
		),
		failures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rawvec_allocation_failures_total",
				Help: "Total number of refused buffer allocations",
			},
			[]string{"policy"},
		),
		capacity: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rawvec_buffer_capacity_slots",
				Help:    "Buffer capacity in slots after each capacity change",
				Buckets: prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"policy"},
		),
	}
}

// ObserveResize records ev.
func (c *Collector) ObserveResize(ev types.ResizeEvent) {
	policy := ev.Policy()
	if ev.Op == types.OpFail {
		c.failures.WithLabelValues(policy).Inc()
		return
	}
	c.relocations.WithLabelValues(string(ev.Op), policy).Inc()
	if ev.NewCap > 0 {
		c.capacity.WithLabelValues(policy).Observe(float64(ev.NewCap))
	}
}
