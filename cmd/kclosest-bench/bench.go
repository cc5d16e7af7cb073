package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"testing"

	"github.com/hupe1980/kclosest"
)

// Row is one benchmark measurement.
type Row struct {
	Strategy      kclosest.Strategy
	N             int
	K             int
	OpsPerSec     float64
	Relative      float64
	Effectiveness float64
}

type benchmarkFunc func(f func(b *testing.B)) testing.BenchmarkResult

// runBenchmarks measures every strategy for each k below the collection
// size. Relative speed is against the full sort of the same k and
// effectiveness is N×K×S/1e7. Cancelling ctx stops before the next
// measurement and returns the rows collected so far with ctx.Err().
func runBenchmarks(ctx context.Context, s *kclosest.Seeker[int], target int, ks []int, bench benchmarkFunc) ([]Row, error) {
	n := s.Len()
	var rows []Row

	for _, k := range ks {
		if k >= n {
			continue
		}

		var baseline float64
		for i, strategy := range kclosest.Strategies() {
			if err := ctx.Err(); err != nil {
				return rows, err
			}
			res := bench(func(b *testing.B) {
				for range b.N {
					_, _ = s.NearestBy(strategy, target, k)
				}
			})

			hz := opsPerSec(res)
			if i == 0 {
				baseline = hz
			}

			rows = append(rows, Row{
				Strategy:      strategy,
				N:             n,
				K:             k,
				OpsPerSec:     hz,
				Relative:      ratio(hz, baseline),
				Effectiveness: round(hz*float64(n)*float64(k)/1e7, 2),
			})
		}
	}
	return rows, nil
}

func opsPerSec(res testing.BenchmarkResult) float64 {
	if res.T <= 0 {
		return 0
	}
	return float64(res.N) / res.T.Seconds()
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return round(a/b, 2)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func writeMarkdown(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, "| Method | **N** Elements | **K** Closest | **S**peed (runs/sec) | Relative Performance | Effectiveness (N×K×S×λ) |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "|--------|----------------|---------------|----------------------|---------------------|-------------------------|"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "| %s | %d | %d | %.2f | %.2fx | %.2f |\n",
			r.Strategy, r.N, r.K, r.OpsPerSec, r.Relative, r.Effectiveness); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"method", "n", "k", "ops_per_sec", "relative", "effectiveness"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Strategy.String(),
			strconv.Itoa(r.N),
			strconv.Itoa(r.K),
			strconv.FormatFloat(r.OpsPerSec, 'f', 2, 64),
			strconv.FormatFloat(r.Relative, 'f', 2, 64),
			strconv.FormatFloat(r.Effectiveness, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
