package kclosest

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/kclosest/distance"
	"github.com/hupe1980/kclosest/heap"
)

// Seeker answers nearest-neighbor queries over a fixed collection.
//
// The collection and distance function are fixed at construction. Queries
// never modify the Seeker, so concurrent queries are safe as long as the
// distance function and the configured MetricsCollector are.
type Seeker[T any] struct {
	items   []T
	dist    distance.Func[T]
	metric  string
	logger  *Logger
	metrics MetricsCollector
}

// candidate pairs an element with its distance to the current query.
type candidate[T any] struct {
	item T
	dist float64
}

func nearestFirst[T any](a, b candidate[T]) int { return cmp.Compare(a.dist, b.dist) }

func farthestFirst[T any](a, b candidate[T]) int { return cmp.Compare(b.dist, a.dist) }

// New creates a Seeker over a copy of items.
//
// If dist is nil the distance function is inferred from the first element
// (see distance.Infer). New fails with an error matching
// ErrCannotInferDistance when inference is impossible, including for an
// empty collection.
func New[T any](items []T, dist distance.Func[T], optFns ...Option) (*Seeker[T], error) {
	opts := applyOptions(optFns)
	ctx := context.Background()

	metric := "custom"
	if dist == nil {
		fn, m, err := inferDistance(items)
		if err != nil {
			opts.logger.LogCreate(ctx, len(items), "", err)
			return nil, err
		}
		dist, metric = fn, m.String()
	}

	s := &Seeker[T]{
		items:   slices.Clone(items),
		dist:    dist,
		metric:  metric,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
	s.logger.LogCreate(ctx, len(s.items), metric, nil)
	return s, nil
}

func inferDistance[T any](items []T) (distance.Func[T], distance.Metric, error) {
	if len(items) == 0 {
		return nil, 0, &ErrInferenceFailed{}
	}
	sample := items[0]
	shape, _ := distance.ShapeOf(sample)
	fn, err := distance.Infer(sample)
	if err != nil {
		return nil, 0, &ErrInferenceFailed{Shape: shape, Type: fmt.Sprintf("%T", sample), cause: err}
	}
	m, _ := shape.Metric()
	return fn, m, nil
}

// Len returns the number of elements in the collection.
func (s *Seeker[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the collection.
func (s *Seeker[T]) Items() []T {
	return slices.Clone(s.items)
}

// Metric returns the name of the inferred metric, or "custom" when the
// distance function was supplied by the caller.
func (s *Seeker[T]) Metric() string {
	return s.metric
}

// Nearest is the recommended entry point. A k <= 1 returns the single
// nearest element; larger k uses the bounded heap strategy.
func (s *Seeker[T]) Nearest(query T, k int) []T {
	if k <= 1 {
		item, ok := s.NearestOne(query)
		if !ok {
			return nil
		}
		return []T{item}
	}
	return s.NearestKByBoundedHeap(query, k)
}

// NearestBy runs the given strategy.
func (s *Seeker[T]) NearestBy(strategy Strategy, query T, k int) ([]T, error) {
	switch strategy {
	case StrategyFullSort:
		return s.NearestKByFullSort(query, k), nil
	case StrategySelection:
		return s.NearestKBySelection(query, k), nil
	case StrategyHeapSort:
		return s.NearestKByHeapSort(query, k), nil
	case StrategyBoundedHeap:
		return s.NearestKByBoundedHeap(query, k), nil
	case StrategyLinearScan:
		return s.Nearest(query, 1), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
}

// NearestOne returns the element closest to query in a single linear scan.
// Ties keep the first element encountered. The bool is false if the
// collection is empty.
func (s *Seeker[T]) NearestOne(query T) (T, bool) {
	start := time.Now()

	var best T
	if len(s.items) == 0 {
		s.observe(StrategyLinearScan, 1, 0, start)
		return best, false
	}

	best = s.items[0]
	minDist := s.dist(query, best)
	for _, item := range s.items[1:] {
		if d := s.dist(query, item); d < minDist {
			best, minDist = item, d
		}
	}

	s.observe(StrategyLinearScan, 1, 1, start)
	return best, true
}

// NearestKByFullSort sorts a copy of the collection by distance and keeps
// the first k. The order among equal distances is unspecified.
func (s *Seeker[T]) NearestKByFullSort(query T, k int) []T {
	start := time.Now()
	k = s.clampK(k)
	if k == 0 {
		s.observe(StrategyFullSort, k, 0, start)
		return nil
	}

	cands := s.score(query)
	slices.SortFunc(cands, nearestFirst[T])

	out := unwrap(cands[:k])
	s.observe(StrategyFullSort, k, len(out), start)
	return out
}

// NearestKBySelection moves the minimum of the unselected suffix into place
// k times. Ties keep the first element encountered in each pass.
func (s *Seeker[T]) NearestKBySelection(query T, k int) []T {
	start := time.Now()
	k = s.clampK(k)
	if k == 0 {
		s.observe(StrategySelection, k, 0, start)
		return nil
	}

	cands := s.score(query)
	for j := range k {
		iMin := j
		for i := j + 1; i < len(cands); i++ {
			if cands[i].dist < cands[iMin].dist {
				iMin = i
			}
		}
		if iMin != j {
			cands[j], cands[iMin] = cands[iMin], cands[j]
		}
	}

	out := unwrap(cands[:k])
	s.observe(StrategySelection, k, len(out), start)
	return out
}

// NearestKByHeapSort heapifies the whole collection as a min-heap by
// distance and drains k elements. The result is in ascending distance.
func (s *Seeker[T]) NearestKByHeapSort(query T, k int) []T {
	start := time.Now()
	k = s.clampK(k)
	if k == 0 {
		s.observe(StrategyHeapSort, k, 0, start)
		return nil
	}

	h := heap.New[candidate[T]](nearestFirst[T]).Build(s.score(query))

	out := unwrap(h.Drain(k))
	s.observe(StrategyHeapSort, k, len(out), start)
	return out
}

// NearestKByBoundedHeap keeps the k best candidates seen so far in a
// max-heap keyed by distance, so working memory is O(k) regardless of the
// collection size. A k >= Len() returns the whole collection sorted by
// distance.
//
// The result is the heap contents reversed, which is ascending by distance.
func (s *Seeker[T]) NearestKByBoundedHeap(query T, k int) []T {
	start := time.Now()
	k = s.clampK(k)
	if k == 0 {
		s.observe(StrategyBoundedHeap, k, 0, start)
		return nil
	}
	if k == len(s.items) {
		cands := s.score(query)
		slices.SortFunc(cands, nearestFirst[T])
		out := unwrap(cands)
		s.observe(StrategyBoundedHeap, k, len(out), start)
		return out
	}

	seed := make([]candidate[T], k, k+1)
	for i, item := range s.items[:k] {
		seed[i] = candidate[T]{item: item, dist: s.dist(query, item)}
	}
	h := heap.New[candidate[T]](farthestFirst[T]).Build(seed)

	top, _ := h.Peek()
	for _, item := range s.items[k:] {
		d := s.dist(query, item)
		if d < top.dist {
			h.Push(candidate[T]{item: item, dist: d})
			h.Pop()
			top, _ = h.Peek()
		}
	}

	out := unwrap(h.Drain(0))
	slices.Reverse(out)
	s.observe(StrategyBoundedHeap, k, len(out), start)
	return out
}

func (s *Seeker[T]) clampK(k int) int {
	return max(0, min(k, len(s.items)))
}

// score pairs every element with its distance to query.
func (s *Seeker[T]) score(query T) []candidate[T] {
	cands := make([]candidate[T], len(s.items))
	for i, item := range s.items {
		cands[i] = candidate[T]{item: item, dist: s.dist(query, item)}
	}
	return cands
}

func (s *Seeker[T]) observe(strategy Strategy, k, results int, start time.Time) {
	s.metrics.RecordQuery(strategy, len(s.items), k, results, time.Since(start))
	s.logger.LogQuery(context.Background(), strategy, len(s.items), k, results)
}

func unwrap[T any](cands []candidate[T]) []T {
	out := make([]T, len(cands))
	for i, c := range cands {
		out[i] = c.item
	}
	return out
}
