// Package metrics holds the prometheus collectors describing searches.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search kinds.
const (
	KindSolve  = "solve"
	KindCheats = "cheats"
)

// Search outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeNoPath  = "no_path"
	OutcomeBudget  = "budget_exceeded"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics groups the search collectors. A nil *Metrics records nothing.
type Metrics struct {
	Searches *prometheus.CounterVec
	Expanded *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// It panics if they are already registered, like prometheus.MustRegister.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridpath_searches_total",
				Help: "Total number of searches by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		Expanded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridpath_expanded_states_total",
				Help: "States finalized by searches",
			},
			[]string{"kind"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gridpath_search_duration_seconds",
				Help:    "Duration of searches",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.Searches, m.Expanded, m.Duration)
	return m
}

// Observe records one finished search.
func (m *Metrics) Observe(kind, outcome string, expanded int, took time.Duration) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(kind, outcome).Inc()
	if expanded > 0 {
		m.Expanded.WithLabelValues(kind).Add(float64(expanded))
	}
	m.Duration.WithLabelValues(kind).Observe(took.Seconds())
}
