package heap

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInvariant checks that no child orders strictly before its parent.
func assertInvariant[T any](t *testing.T, h *Heap[T]) {
	t.Helper()
	for i := 1; i < len(h.items); i++ {
		p := (i - 1) / 2
		require.LessOrEqualf(t, h.cmp(h.items[p], h.items[i]), 0, "parent %d orders after child %d", p, i)
	}
}

func TestHeap(t *testing.T) {
	t.Run("PushLayout", func(t *testing.T) {
		h := NewMax[int]()
		for i := range 10 {
			h.Push(i)
		}

		assert.Equal(t, []int{9, 8, 5, 6, 7, 1, 4, 0, 3, 2}, h.items)

		top, ok := h.Peek()
		require.True(t, ok)
		assert.Equal(t, 9, top)
		assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, h.Drain(0))
	})

	t.Run("BuildThenPop", func(t *testing.T) {
		h := NewMax[int]().Build([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
		assertInvariant(t, h)

		for i := range 10 {
			v, ok := h.Pop()
			require.True(t, ok)
			assert.Equal(t, 9-i, v)
		}
		assert.Equal(t, 0, h.Len())
	})

	t.Run("BuildInPlace", func(t *testing.T) {
		items := []int{3, 1, 4, 1, 5, 9, 2, 6}
		h := NewMin[int]().Build(items)

		top, _ := h.Peek()
		assert.Equal(t, 1, top)
		assert.Equal(t, 1, items[0], "build reorders the caller's slice")
	})

	t.Run("Empty", func(t *testing.T) {
		h := NewMax[int]()

		v, ok := h.Peek()
		assert.False(t, ok)
		assert.Zero(t, v)

		v, ok = h.Pop()
		assert.False(t, ok)
		assert.Zero(t, v)

		assert.Empty(t, h.Drain(5))
	})

	t.Run("DrainLimit", func(t *testing.T) {
		h := NewMin[int]().Build([]int{5, 3, 8, 1})

		assert.Equal(t, []int{1, 3}, h.Drain(2))
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, []int{5, 8}, h.Drain(10), "limit beyond count stops once exhausted")
		assert.Equal(t, 0, h.Len())
	})

	t.Run("PopClearsVacatedSlot", func(t *testing.T) {
		a, b := 1, 2
		h := New[*int](func(x, y *int) int { return cmp.Compare(*x, *y) })
		h.Push(&a)
		h.Push(&b)

		_, ok := h.Pop()
		require.True(t, ok)
		assert.Nil(t, h.items[:2][1])
	})

	t.Run("Reset", func(t *testing.T) {
		h := NewMax[int]()
		for i := range 100 {
			h.Push(i)
		}
		h.Reset()
		assert.Equal(t, 0, h.Len())

		h.Push(7)
		top, _ := h.Peek()
		assert.Equal(t, 7, top)
	})

	t.Run("NilComparator", func(t *testing.T) {
		assert.Panics(t, func() { New[int](nil) })
	})
}

func TestHeapSortsRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	tests := []struct {
		name string
		c    Comparator[int]
		want func([]int)
	}{
		{"Ascending", Ascending[int], func(s []int) { slices.Sort(s) }},
		{"Descending", Descending[int], func(s []int) { slices.SortFunc(s, Descending[int]) }},
		{"Reverse", Reverse(Ascending[int]), func(s []int) { slices.SortFunc(s, Descending[int]) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.c)
			arr := make([]int, 0, 50)
			for range 50 {
				r := rng.Intn(100)
				arr = append(arr, r)
				h.Push(r)
				assertInvariant(t, h)
			}

			tt.want(arr)
			assert.Equal(t, arr, h.Drain(0))
		})
	}
}

func TestHeapInvariantUnderMixedOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := NewMax[float64]().Build([]float64{0.5, 0.1, 0.9})

	for range 1000 {
		if rng.Intn(3) == 0 {
			h.Pop()
		} else {
			h.Push(rng.Float64())
		}
		assertInvariant(t, h)
	}

	prev, ok := h.Pop()
	for ok {
		var next float64
		next, ok = h.Pop()
		if ok {
			assert.LessOrEqual(t, next, prev, "max-heap pops non-increasing")
			prev = next
		}
	}
}
