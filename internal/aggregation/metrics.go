package aggregation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts cache outcomes and generation latency per aggregation kind.
type Metrics struct {
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	cacheErrors *prometheus.CounterVec
	generate    *prometheus.HistogramVec
}

// NewMetrics registers the engine collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mucritic_aggregation_cache_hits_total",
			Help: "Aggregations served from the cache",
		}, []string{"kind"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mucritic_aggregation_cache_misses_total",
			Help: "Cache lookups that fell through to generation",
		}, []string{"kind"}),
		cacheErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mucritic_aggregation_cache_errors_total",
			Help: "Cache reads or writes that failed",
		}, []string{"kind", "op"}), // op: get | set
		generate: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mucritic_aggregation_generate_duration_seconds",
			Help:    "Time spent generating an aggregation on a cache miss",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		}, []string{"kind", "normalized"}),
	}
}

// nil-safe helpers; an Aggregator without metrics records nothing.

func (m *Metrics) hit(kind string) {
	if m != nil {
		m.cacheHits.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) miss(kind string) {
	if m != nil {
		m.cacheMisses.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) cacheError(kind, op string) {
	if m != nil {
		m.cacheErrors.WithLabelValues(kind, op).Inc()
	}
}

func (m *Metrics) observe(kind string, normalized bool, seconds float64) {
	if m == nil {
		return
	}
	label := "false"
	if normalized {
		label = "true"
	}
	m.generate.WithLabelValues(kind, label).Observe(seconds)
}
