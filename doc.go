// Package sfm is an in-memory engine for Structural Functional Models —
// DAGs where every non-root node's value is a deterministic function of
// its parents' values, and roots (exogenous nodes) take externally
// supplied values.
//
// 🚀 What is sfm?
//
//	A small, deterministic, pure-Go inference library that brings together:
//		• Core model: immutable DAG + per-node structural functions, validated once
//		• Vanilla forward inference (VFI): one topological sweep, every node once
//		• Contrastive forward inference (CFI): recompute only the dirty downstream
//		  of changed exogenous inputs, copy everything else from the reference run
//		• Partial variants: ancestor-closure pruning so only requested targets
//		  (and what feeds them) are ever evaluated
//		• Random model generation: seeded Erdős–Rényi DAGs with random linear
//		  or congruence functions for testing and benchmarking
//
// ✨ Why choose sfm?
//
//   - Deterministic – same model, same inputs, same seed ⇒ identical output
//   - Minimal recomputation – CFI and partial pruning skip provably unchanged work
//   - Rock-solid guarantees – eager construction validation, sentinel errors,
//     no partial results on failure
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — Model, NodeSpec, Func types; construction, validation, topology
//	infer/   — VFI, CFI, PartialVFI, PartialCFI + contrast encoding helpers
//	randsfm/ — seeded random DAG + random function generators
//
// Quick ASCII example:
//
//	A   B        exogenous inputs
//	 \ /
//	  C          C = f(A, B)
//	  │
//	  D          D = g(C)
//
//	VFI evaluates C then D; changing only B makes CFI recompute
//	exactly {C, D} and copy A forward untouched.
//
// Each subpackage's doc.go carries the full contract, complexity notes
// and error catalogue.
//
//	go get github.com/katalvlaran/sfm
package sfm
