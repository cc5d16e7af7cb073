// Package heap provides a generic array-backed binary heap.
//
// Ordering is governed by an injected Comparator. The element that the
// comparator orders first sits at the root:
//
//	h := heap.NewMax[int]()          // largest value first
//	h := heap.New(func(a, b T) int { // any custom ordering
//	    return cmp.Compare(a.Score, b.Score)
//	})
//
// # Operations
//
//   - Build: O(n) bottom-up heapify of an existing slice (in place)
//   - Push: O(log n)
//   - Peek: O(1)
//   - Pop: O(log n)
//   - Drain: O(k log n) for k extracted elements
//
// Peek and Pop on an empty heap report emptiness through their bool result
// instead of returning a zero value that could be mistaken for an element.
//
// A Heap is not safe for concurrent use.
package heap
