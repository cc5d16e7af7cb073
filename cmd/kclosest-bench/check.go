package main

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kclosest"
	"github.com/hupe1980/kclosest/distance"
)

// MismatchError reports strategies that disagree on the selected distances.
type MismatchError struct {
	Query     int
	K         int
	Distances map[kclosest.Strategy][]float64
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "results do not match for query %d, k %d:", e.Query, e.K)
	for _, s := range kclosest.Strategies() {
		fmt.Fprintf(&b, " %s=%v", s, e.Distances[s])
	}
	return b.String()
}

// crossCheck verifies that every strategy selects the same multiset of
// distances for each query. Queries run concurrently; a Seeker is read-only.
func crossCheck(ctx context.Context, s *kclosest.Seeker[int], dist distance.Func[int], queries []int, k int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, q := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return checkQuery(s, dist, q, k)
		})
	}
	return g.Wait()
}

func checkQuery(s *kclosest.Seeker[int], dist distance.Func[int], q, k int) error {
	results := make(map[kclosest.Strategy][]float64, len(kclosest.Strategies()))
	var reference []float64
	match := true

	for i, strategy := range kclosest.Strategies() {
		got, err := s.NearestBy(strategy, q, k)
		if err != nil {
			return err
		}
		d := sortedDistances(q, got, dist)
		results[strategy] = d
		if i == 0 {
			reference = d
		} else if !slices.Equal(reference, d) {
			match = false
		}
	}

	if !match {
		return &MismatchError{Query: q, K: k, Distances: results}
	}
	return nil
}

func sortedDistances(q int, items []int, dist distance.Func[int]) []float64 {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = dist(q, item)
	}
	slices.Sort(out)
	return out
}
