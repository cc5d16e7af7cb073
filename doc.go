// Package kclosest provides k-nearest neighbor selection over in-memory collections.
//
// A Seeker wraps a fixed collection and a query-relative distance function
// and answers "which k elements are closest to this query?" with several
// interchangeable strategies built on the heap package.
//
// # Quick Start
//
//	s, err := kclosest.New(items, distance.Abs[int])
//	nearest, ok := s.NearestOne(42)   // single closest, O(n)
//	top := s.Nearest(42, 10)          // 10 closest, bounded heap
//
// The distance function may be omitted for scalars, numeric vectors and
// RGB elements, in which case it is inferred from the first element:
//
//	s, err := kclosest.New(colors, nil)
//	if errors.Is(err, kclosest.ErrCannotInferDistance) {
//	    // pass an explicit distance.Func
//	}
//
// # Strategies
//
//	Strategy             Time              Memory
//	StrategyFullSort     O(n log n)        O(n)
//	StrategySelection    O(n·k)            O(n)
//	StrategyHeapSort     O(n + k log n)    O(n)
//	StrategyBoundedHeap  O(n log k)        O(k)
//
// Nearest uses the bounded heap, which is the right choice whenever k is
// small relative to n. The other strategies remain available through their
// methods and NearestBy for benchmarking and cross-checking. All of them
// select the same multiset of distances; the order among equal distances
// is unspecified.
//
// A k larger than the collection is clamped to its size. A k <= 0 yields an
// empty result.
//
// # Filtering
//
// NearestWithin restricts a query to collection positions held in a
// roaring bitmap:
//
//	allow := s.Positions(func(c Color) bool { return c.R > 100 })
//	warm := s.NearestWithin(query, 3, allow)
//
// # Observability
//
// Construction and queries are reported to a structured Logger (log/slog)
// and a MetricsCollector configured with WithLogger and
// WithMetricsCollector. The prommetrics package exports query metrics to
// Prometheus.
package kclosest
