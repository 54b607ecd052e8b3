// Package testutil provides testing utilities for skewheap.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded workload generators and reference results to check
// heap drains against.
//
// # Workloads
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Perm(10_000)        // shuffled 0..n-1, like the classic fill/drain benchmark
//	dups := rng.Ints(10_000, 16)    // heavy duplicates to exercise tie-breaking
//	ops := rng.Ops(10_000, 0.6)     // interleaved put/take script
//
// # Reference Results
//
//	want := testutil.MergeSorted(sortedA, sortedB) // expected drain after Adopt
package testutil
