// Command kclosest-bench compares the k-nearest strategies on a random
// integer collection.
//
// It first cross-checks that every strategy selects the same distances,
// then benchmarks each strategy for every configured k and prints a
// Markdown table. Configuration is read from KCLOSEST_* environment
// variables (optionally from a .env file) and flags:
//
//	KCLOSEST_N=100000 KCLOSEST_KS=5,10,50 kclosest-bench -csv results.csv
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"testing"

	"github.com/hupe1980/kclosest"
	"github.com/hupe1980/kclosest/distance"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, testing.Benchmark); err != nil {
		fmt.Fprintln(os.Stderr, "kclosest-bench:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, bench benchmarkFunc) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := kclosest.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rng := rand.New(rand.NewSource(cfg.Seed)) // nolint gosec
	logger.WithCount(cfg.N).InfoContext(ctx, "generating dataset", "seed", cfg.Seed)
	items := make([]int, cfg.N)
	for i := range items {
		items[i] = rng.Intn(cfg.N * 10)
	}
	target := cfg.N / 2

	dist := distance.Abs[int]
	s, err := kclosest.New(items, dist, kclosest.WithLogger(logger))
	if err != nil {
		return err
	}

	queries := []int{target}
	for range cfg.Checks {
		queries = append(queries, rng.Intn(cfg.N*10))
	}
	checkK := min(cfg.CheckK, cfg.N)
	logger.WithK(checkK).InfoContext(ctx, "checking results of the strategies", "queries", len(queries))
	if err := crossCheck(ctx, s, dist, queries, checkK); err != nil {
		logger.ErrorContext(ctx, "results do not match", "error", err)
		return err
	}

	logger.InfoContext(ctx, "running benchmarks", "ks", cfg.Ks)
	rows, err := runBenchmarks(ctx, s, target, cfg.Ks, bench)
	if err != nil {
		logger.WarnContext(ctx, "benchmarks interrupted", "rows", len(rows), "error", err)
		return err
	}

	if _, err := fmt.Fprintf(stdout, "## N=%d\n\n", cfg.N); err != nil {
		return err
	}
	if err := writeMarkdown(stdout, rows); err != nil {
		return err
	}

	if cfg.CSV != "" {
		f, err := os.Create(cfg.CSV)
		if err != nil {
			return err
		}
		if err := writeCSV(f, rows); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.InfoContext(ctx, "csv written", "path", cfg.CSV, "rows", len(rows))
	}
	return nil
}
