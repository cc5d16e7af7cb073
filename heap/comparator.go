package heap

import "cmp"

// Comparator reports the relative order of a and b.
// A negative result means a orders before b (a is closer to the root),
// zero means they are equivalent and a positive result means b orders first.
type Comparator[T any] func(a, b T) int

// Descending orders larger values first, which turns a Heap into a max-heap.
// It is the default comparator used by NewMax.
func Descending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

// Ascending orders smaller values first, which turns a Heap into a min-heap.
func Ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Reverse returns a comparator with the inverted order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}
