package benchmark_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kclosest"
	"github.com/hupe1980/kclosest/distance"
	"github.com/hupe1980/kclosest/testutil"
)

var (
	sizes = []int{1_000, 10_000, 100_000}
	ks    = []int{5, 10, 50, 100, 500, 1000}
)

func newIntSeeker(b *testing.B, n int) (*kclosest.Seeker[int], []int) {
	b.Helper()
	rng := testutil.NewRNG(1)
	items := rng.Ints(n, n*10)
	s, err := kclosest.New(items, distance.Abs[int])
	if err != nil {
		b.Fatal(err)
	}
	return s, items
}

func BenchmarkStrategies(b *testing.B) {
	for _, n := range sizes {
		s, _ := newIntSeeker(b, n)
		target := n / 2

		for _, k := range ks {
			if k >= n {
				continue
			}
			for _, strategy := range kclosest.Strategies() {
				b.Run(formatNK(n, k)+"/"+strategy.String(), func(b *testing.B) {
					b.ReportAllocs()
					for b.Loop() {
						if _, err := s.NearestBy(strategy, target, k); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		}
	}
}

func BenchmarkNearestOne(b *testing.B) {
	for _, n := range sizes {
		s, _ := newIntSeeker(b, n)
		b.Run(formatNK(n, 1), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = s.NearestOne(n / 2)
			}
		})
	}
}

// BenchmarkContainerHeap is the container/heap baseline for the bounded heap.
func BenchmarkContainerHeap(b *testing.B) {
	for _, n := range sizes {
		_, items := newIntSeeker(b, n)
		for _, k := range []int{10, 100} {
			b.Run(formatNK(n, k), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_ = containerHeapTopK(items, n/2, k)
				}
			})
		}
	}
}

func BenchmarkNearestWithin(b *testing.B) {
	const n = 100_000
	s, _ := newIntSeeker(b, n)
	selectivities := []int{1, 10, 50}

	for _, pct := range selectivities {
		allow := roaring.New()
		for i := 0; i < n; i += 100 / pct {
			allow.Add(uint32(i))
		}
		b.Run(formatNK(int(allow.GetCardinality()), 10), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = s.NearestWithin(n/2, 10, allow)
			}
		})
	}
}

func BenchmarkVectors(b *testing.B) {
	rng := testutil.NewRNG(7)
	for _, dim := range []int{3, 128} {
		vectors := rng.Vectors(10_000, dim)
		s, err := kclosest.New(vectors, distance.VectorProvider[float64](dim))
		if err != nil {
			b.Fatal(err)
		}
		query := rng.Vectors(1, dim)[0]

		b.Run(formatNK(dim, 10), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = s.Nearest(query, 10)
			}
		})
	}
}

// TestBaselineAgrees keeps the container/heap baseline honest.
func TestBaselineAgrees(t *testing.T) {
	rng := testutil.NewRNG(3)
	items := rng.Ints(2_000, 20_000)
	s, err := kclosest.New(items, distance.Abs[int])
	require.NoError(t, err)

	for _, k := range []int{1, 10, 100} {
		q := rng.Intn(20_000)
		require.Equal(t, sortedAbs(q, containerHeapTopK(items, q, k)), sortedAbs(q, s.Nearest(q, k)))
	}
}
