// Package prommetrics exports kclosest query metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	s, _ := kclosest.New(items, nil, kclosest.WithMetricsCollector(prommetrics.New(reg)))
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/kclosest"
)

// Compile time check to ensure Collector satisfies the MetricsCollector interface.
var _ kclosest.MetricsCollector = (*Collector)(nil)

// Collector implements kclosest.MetricsCollector with Prometheus metrics.
type Collector struct {
	// QueriesTotal counts queries by strategy.
	QueriesTotal *prometheus.CounterVec
	// QueryDurationSeconds measures query latency by strategy.
	QueryDurationSeconds *prometheus.HistogramVec
	// ResultsTotal counts returned elements by strategy.
	ResultsTotal *prometheus.CounterVec
	// RequestedK tracks the distribution of k after clamping.
	RequestedK prometheus.Histogram
	// CollectionSize reports the size of the most recently queried collection.
	CollectionSize prometheus.Gauge
}

// New creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	c := &Collector{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kclosest_queries_total",
				Help: "Total number of nearest-neighbor queries",
			},
			[]string{"strategy"},
		),
		QueryDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kclosest_query_duration_seconds",
				Help:    "Duration of nearest-neighbor queries",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"strategy"},
		),
		ResultsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kclosest_results_total",
				Help: "Total number of elements returned by queries",
			},
			[]string{"strategy"},
		),
		RequestedK: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "kclosest_query_k",
				Help:    "Number of neighbors requested per query after clamping",
				Buckets: prometheus.ExponentialBuckets(1, 2, 16),
			},
		),
		CollectionSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "kclosest_collection_size",
				Help: "Number of elements in the most recently queried collection",
			},
		),
	}

	// Pre-create per-strategy series so they are exported at zero.
	for _, label := range Labels() {
		c.QueriesTotal.WithLabelValues(label)
		c.ResultsTotal.WithLabelValues(label)
	}
	return c
}

// RecordQuery implements kclosest.MetricsCollector.
func (c *Collector) RecordQuery(strategy kclosest.Strategy, n, k, results int, duration time.Duration) {
	label := strategy.String()
	c.QueriesTotal.WithLabelValues(label).Inc()
	c.QueryDurationSeconds.WithLabelValues(label).Observe(duration.Seconds())
	c.ResultsTotal.WithLabelValues(label).Add(float64(results))
	c.RequestedK.Observe(float64(k))
	c.CollectionSize.Set(float64(n))
}

// Labels returns the strategy label values the collector emits.
func Labels() []string {
	out := make([]string, 0, len(kclosest.Strategies())+1)
	for _, s := range kclosest.Strategies() {
		out = append(out, s.String())
	}
	return append(out, kclosest.StrategyLinearScan.String())
}
