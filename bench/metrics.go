// Package bench: Prometheus instrumentation of benchmark runs.

package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of SearchesTotal.
const (
	OutcomeSolved      = "solved"
	OutcomeUnreachable = "unreachable"
	OutcomeLimit       = "limit"
)

// Metrics holds the collectors updated after every search.
type Metrics struct {
	SearchesTotal  *prometheus.CounterVec
	ExpandedStates *prometheus.HistogramVec
	SearchSeconds  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// Pass prometheus.NewRegistry() to keep benchmarks isolated from the default registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "lvsearch_searches_total", Help: "Benchmark searches by algorithm, heuristic and outcome"},
			[]string{"algorithm", "heuristic", "outcome"},
		),
		ExpandedStates: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "lvsearch_expanded_states", Help: "States expanded per search", Buckets: prometheus.ExponentialBuckets(1, 4, 10)},
			[]string{"algorithm", "heuristic"},
		),
		SearchSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "lvsearch_search_duration_seconds", Help: "Wall-clock time per search", Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10)},
			[]string{"algorithm", "heuristic"},
		),
	}
	for _, c := range []prometheus.Collector{m.SearchesTotal, m.ExpandedStates, m.SearchSeconds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(r Row, outcome string) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(r.Algorithm, r.Heuristic, outcome).Inc()
	m.ExpandedStates.WithLabelValues(r.Algorithm, r.Heuristic).Observe(float64(r.Expanded))
	m.SearchSeconds.WithLabelValues(r.Algorithm, r.Heuristic).Observe(r.Millis / 1000)
}
