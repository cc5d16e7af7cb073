package kclosest

import (
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/kclosest/heap"
)

// NearestWithin returns the k elements closest to query among the
// collection positions contained in allow. Positions outside the collection
// are ignored and a nil allow applies no restriction.
//
// It uses the bounded heap strategy and returns results in ascending
// distance.
func (s *Seeker[T]) NearestWithin(query T, k int, allow *roaring.Bitmap) []T {
	if allow == nil {
		return s.NearestKByBoundedHeap(query, k)
	}

	start := time.Now()
	k = s.clampK(k)
	if k == 0 || allow.IsEmpty() {
		s.observe(StrategyBoundedHeap, k, 0, start)
		return nil
	}

	h := heap.New[candidate[T]](farthestFirst[T])
	it := allow.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		if pos >= len(s.items) {
			break // iteration is ascending
		}
		c := candidate[T]{item: s.items[pos], dist: s.dist(query, s.items[pos])}
		if h.Len() < k {
			h.Push(c)
			continue
		}
		if top, _ := h.Peek(); c.dist < top.dist {
			h.Push(c)
			h.Pop()
		}
	}

	out := unwrap(h.Drain(0))
	slices.Reverse(out)
	s.observe(StrategyBoundedHeap, k, len(out), start)
	return out
}

// Positions returns a bitmap holding the collection positions whose element
// satisfies keep. It is a convenience for building NearestWithin filters.
func (s *Seeker[T]) Positions(keep func(T) bool) *roaring.Bitmap {
	rb := roaring.New()
	for i, item := range s.items {
		if keep(item) {
			rb.Add(uint32(i))
		}
	}
	return rb
}
