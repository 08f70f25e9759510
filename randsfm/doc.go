// SPDX-License-Identifier: MIT
// Package: sfm/randsfm
//
// Package randsfm generates random Structural Functional Models for testing
// and benchmarking the inference engine: an Erdős–Rényi DAG over a randomly
// shuffled topological rank, with each endogenous node given a randomly
// initialized structural function.
//
// Canonical model:
//   - Draw a random permutation of n node indices; it fixes the topological
//     rank, so acyclicity holds by construction.
//   - For every ranked pair (i, j) with i before j, include the edge i→j
//     independently with probability p.
//   - Nodes that end up with no in-edges are exogenous; every other node
//     receives a function from the supplied FuncFactory.
//
// Determinism:
//   - Stable trial order (rank ascending, earlier endpoint ascending) plus a
//     seeded RNG make the generated model — structure, parent order, and
//     function weights — fully reproducible per (n, p, seed, options).
//
// Function factories:
//   - RandomLinear: f(x) = Σ aᵢxᵢ + c with standard-normal weights (float64).
//   - RandomCongruence(m): f(x) = Σ aᵢxᵢ + c (mod m) with weights drawn from
//     1..m-1 (int64) — handy for exact-equality tests of contrastive runs.
//
// Exogenous assignment helpers:
//   - RandomExoFloats / RandomExoInts draw a fresh exogenous assignment
//     matching a model, for driving VFI/CFI in tests and benchmarks.
//
// Errors:
//
//	ErrTooFewNodes        – n < 1
//	ErrInvalidProbability – p outside [0,1]
//	ErrNeedRandSource     – no RNG configured (WithSeed/WithRand missing)
//	ErrNilFactory         – nil FuncFactory
//
// AI-Hints:
//   - Always pass WithSeed(...) in tests; golden structures depend on it.
//   - p=0 yields n isolated exogenous nodes; p=1 yields the complete DAG on
//     the drawn rank. Both still require an RNG (the rank shuffle uses it).
package randsfm
