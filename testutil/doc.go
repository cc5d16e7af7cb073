// Package testutil provides testing utilities for kclosest.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random collections, computing exact
// k-nearest distances and comparing results that may differ in tie order.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	ints := rng.Ints(1000, 10000)   // values in [0, 10000)
//	vecs := rng.Vectors(1000, 3)    // components in [0, 1)
//
// # Ground Truth
//
//	want := testutil.KDistances(query, items, k, distance.Abs[int])
//	got := testutil.Distances(query, result, distance.Abs[int])
//	// want and got are sorted ascending and comparable with assert.Equal
package testutil
