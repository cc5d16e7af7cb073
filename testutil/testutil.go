package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Ints generates num random integers in range [0, maxVal).
func (r *RNG) Ints(num, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// Vectors generates random vectors with components in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) Vectors(num, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// Distances returns the distances of items to query, sorted ascending.
func Distances[T any](query T, items []T, dist func(q, c T) float64) []float64 {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = dist(query, item)
	}
	slices.Sort(out)
	return out
}

// KDistances performs an exact search for ground truth and returns the k
// smallest distances to query, sorted ascending.
// Any valid k-nearest result has exactly these distances, whatever its tie order.
func KDistances[T any](query T, items []T, k int, dist func(q, c T) float64) []float64 {
	all := Distances(query, items, dist)
	if k < len(all) {
		all = all[:k]
	}
	return all
}

// Sorted returns a sorted copy of values, for set comparisons that ignore order.
func Sorted[S ~[]E, E interface{ ~int | ~float64 | ~string }](values S) S {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}
