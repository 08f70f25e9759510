// Package core provides the immutable Structural Functional Model (SFM):
// a directed acyclic graph in which every endogenous node carries a pure
// function from its ordered parent values to a single value, and every
// exogenous (root) node takes its value from the caller.
//
// The Model[V] is built once by New from a list of NodeSpec[V] entries and
// is never mutated afterwards, so a single Model can back any number of
// concurrent inference calls without locking.
//
// Why use core.Model?
//
//   - Eager validation — duplicate nodes, dangling parents, exogenous nodes
//     with functions, endogenous nodes without, and cycles are all rejected
//     at construction; inference never needs to re-validate structure.
//   - Deterministic iteration — Nodes(), ExoNodes(), EndoNodes(), Children()
//     and TopologicalOrder() return stable, reproducible sequences for a
//     given construction.
//   - Precomputed adjacency — parent and child indexes are materialized up
//     front, so ancestor/descendant walks used by pruning are O(1) per hop.
//   - Opaque values — Model is generic over any comparable V; the engine
//     needs only equality, never arithmetic.
//
// Core methods:
//
//	// Construction
//	New(specs []NodeSpec[V]) (*Model[V], error)     // O(V+E), validates everything
//
//	// Structure queries
//	Has(id string) bool                              // O(1)
//	Parents(id string) []string                      // O(deg), fresh copy, declared order
//	Children(id string) []string                     // O(deg), fresh copy, sorted
//	IsExogenous(id string) bool                      // O(1)
//	Nodes() []string                                 // O(V), sorted
//	ExoNodes() []string                              // O(V), sorted
//	EndoNodes() []string                             // O(V), sorted
//	TopologicalOrder() []string                      // O(V), cached, deterministic
//	NodeCount() / EdgeCount() int                    // O(1)
//
//	// Evaluation
//	Evaluate(id string, args []V) (V, error)         // invoke the node function
//
//	// Whole-assignment checks
//	SatisfiedBy(w map[string]V) (bool, error)        // does w satisfy every function?
//	Violations(w map[string]V) ([]Violation[V], error)
//
//	// Shallow view (hot paths; callers must not mutate)
//	InternalParents(id string) []string              // live slice, no copy
//
// Errors:
//
//	ErrEmptyNodeID      – zero-length node ID in a spec
//	ErrDuplicateNode    – the same ID appears twice in the spec list
//	ErrUnknownParent    – a parent reference names a node outside the set
//	ErrExogenousFunc    – a parentless node carries a function
//	ErrMissingFunc      – a node with parents carries no function
//	ErrCycleDetected    – the parent relation is not acyclic
//	ErrNodeNotFound     – a query referenced a non-existent node
//	ErrExogenousEval    – Evaluate called on an exogenous node
//	ErrArityMismatch    – Evaluate argument count ≠ parent count
//	ErrFuncFailed       – the node function itself returned an error
//	ErrIncompleteValuation – SatisfiedBy/Violations input misses a node
package core
