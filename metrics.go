package kclosest

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting query metrics.
// Implement this interface to integrate with monitoring systems; the
// prommetrics package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordQuery is called after each query.
	// n is the collection size, k the number of neighbors requested after
	// clamping and results the number of elements returned.
	RecordQuery(strategy Strategy, n, k, results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordQuery(Strategy, int, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	QueryCount      atomic.Int64
	QueryTotalNanos atomic.Int64
	ResultsReturned atomic.Int64
	EmptyResults    atomic.Int64
	byStrategy      [numStrategies]atomic.Int64
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(strategy Strategy, n, k, results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	b.ResultsReturned.Add(int64(results))
	if results == 0 {
		b.EmptyResults.Add(1)
	}
	if strategy.valid() {
		b.byStrategy[strategy].Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		QueryCount:      b.QueryCount.Load(),
		QueryAvgNanos:   b.getAvgQueryNanos(),
		ResultsReturned: b.ResultsReturned.Load(),
		EmptyResults:    b.EmptyResults.Load(),
		ByStrategy:      make(map[Strategy]int64, numStrategies),
	}
	for s := range Strategy(numStrategies) {
		if c := b.byStrategy[s].Load(); c > 0 {
			stats.ByStrategy[s] = c
		}
	}
	return stats
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	QueryCount      int64
	QueryAvgNanos   int64
	ResultsReturned int64
	EmptyResults    int64
	ByStrategy      map[Strategy]int64
}
