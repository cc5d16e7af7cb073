package benchmark_test

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
)

type topKItem struct {
	value int
	dist  float64
}

// topKHeap is a max-heap by dist so the largest (worst) distance is popped first.
type topKHeap []topKItem

func (h topKHeap) Len() int           { return len(h) }
func (h topKHeap) Less(i, j int) bool { return h[i].dist > h[j].dist }
func (h topKHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *topKHeap) Push(x any)        { *h = append(*h, x.(topKItem)) }
func (h *topKHeap) Pop() any          { old := *h; n := len(old); x := old[n-1]; *h = old[:n-1]; return x }

// containerHeapTopK selects the k nearest integers with container/heap.
func containerHeapTopK(data []int, q, k int) []int {
	h := make(topKHeap, 0, k)
	for _, v := range data {
		d := math.Abs(float64(q - v))
		if len(h) < k {
			heap.Push(&h, topKItem{value: v, dist: d})
			continue
		}
		if d < h[0].dist {
			h[0] = topKItem{value: v, dist: d}
			heap.Fix(&h, 0)
		}
	}

	out := make([]int, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(topKItem).value
	}
	return out
}

func sortedAbs(q int, values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Abs(float64(q - v))
	}
	slices.Sort(out)
	return out
}

func formatNK(n, k int) string {
	return fmt.Sprintf("n=%d/k=%d", n, k)
}
