package observe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/astar"
)

// Metrics holds the Prometheus collectors updated after every observed search.
// All collectors are safe for concurrent use, so one Metrics value may be
// shared by Runners driving independent engines.
type Metrics struct {
	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
	pathLength prometheus.Histogram
	duration   prometheus.Histogram
}

// NewMetrics creates the gridpath collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice with the
// same registry panics, as with any promauto collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridpath",
			Name:      "searches_total",
			Help:      "Finished grid searches by outcome (found, exhausted).",
		}, []string{"outcome"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "expanded_nodes",
			Help:      "Number of cells closed per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		pathLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "path_length",
			Help:      "Number of cells in each found path, endpoints included.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "search_duration_seconds",
			Help:      "Wall time spent in Engine.Search.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}

// Observe records one finished search. pathLen is ignored unless s is Found.
func (m *Metrics) Observe(s astar.State, expanded, pathLen int, d time.Duration) {
	m.searches.WithLabelValues(s.String()).Inc()
	m.expanded.Observe(float64(expanded))
	m.duration.Observe(d.Seconds())
	if s == astar.Found {
		m.pathLength.Observe(float64(pathLen))
	}
}
