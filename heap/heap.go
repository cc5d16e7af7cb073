package heap

import "cmp"

// Heap is a binary heap ordered by a Comparator.
//
// The tree is stored 0-indexed in a slice: the children of node i live at
// 2i+1 and 2i+2, its parent at (i-1)/2. For every non-root node the
// comparator never orders the child strictly before its parent.
type Heap[T any] struct {
	items []T
	cmp   Comparator[T]
}

// New creates an empty heap ordered by c. It panics if c is nil.
func New[T any](c Comparator[T]) *Heap[T] {
	if c == nil {
		panic("heap: nil comparator")
	}
	return &Heap[T]{
		items: make([]T, 0, 16),
		cmp:   c,
	}
}

// NewMax creates an empty max-heap over ordered values.
func NewMax[T cmp.Ordered]() *Heap[T] {
	return New[T](Descending[T])
}

// NewMin creates an empty min-heap over ordered values.
func NewMin[T cmp.Ordered]() *Heap[T] {
	return New[T](Ascending[T])
}

// Build replaces the heap contents with items and restores the heap
// invariant bottom-up in O(n). The heap takes ownership of items and
// reorders it in place. Build returns h to allow chaining.
func (h *Heap[T]) Build(items []T) *Heap[T] {
	h.items = items
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Push inserts item while maintaining the heap invariant.
func (h *Heap[T]) Push(item T) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// Peek returns the root element without removing it.
// The bool is false if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Pop removes and returns the root element.
// The bool is false if the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	root := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero // drop the reference held by the vacated slot
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.siftDown(0)
	}
	return root, true
}

// Drain pops up to limit elements and returns them in pop order.
// A limit <= 0 drains the whole heap. Draining stops early once the heap
// is exhausted.
func (h *Heap[T]) Drain(limit int) []T {
	if limit <= 0 || limit > len(h.items) {
		limit = len(h.items)
	}
	out := make([]T, 0, limit)
	for range limit {
		item, _ := h.Pop()
		out = append(out, item)
	}
	return out
}

// Reset clears the heap for reuse. The backing storage is retained.
func (h *Heap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

func (h *Heap[T]) less(i, j int) bool {
	return h.cmp(h.items[i], h.items[j]) < 0
}

// siftUp moves the element at index i up until its parent no longer orders after it.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

// siftDown moves the element at index i down until neither child orders before it.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		best := i
		l := 2*i + 1
		if l < n && h.less(l, best) {
			best = l
		}
		if r := l + 1; r < n && h.less(r, best) {
			best = r
		}
		if best == i {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
