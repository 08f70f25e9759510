// Package core defines the central Model, NodeSpec and Func types and the
// sentinel errors shared by construction, query and evaluation paths.
//
// This file declares the public types and the New constructor's input shape;
// construction and validation live in model.go, queries in methods.go.
package core

import "errors"

// Sentinel errors for model construction.
var (
	// ErrEmptyNodeID indicates a NodeSpec with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates the same node ID appeared twice in the spec list.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrUnknownParent indicates a parent reference to a node outside the node set.
	ErrUnknownParent = errors.New("core: parent not in node set")

	// ErrExogenousFunc indicates a node with no parents was given a function.
	ErrExogenousFunc = errors.New("core: exogenous node must not have a function")

	// ErrMissingFunc indicates a node with parents was given no function.
	ErrMissingFunc = errors.New("core: endogenous node requires a function")

	// ErrCycleDetected indicates the parent relation contains a directed cycle.
	ErrCycleDetected = errors.New("core: cycle detected")
)

// Sentinel errors for queries and evaluation.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrExogenousEval indicates Evaluate was called on an exogenous node,
	// whose value is supplied externally, never computed.
	ErrExogenousEval = errors.New("core: exogenous node has no function to evaluate")

	// ErrArityMismatch indicates Evaluate received an argument count different
	// from the node's parent count.
	ErrArityMismatch = errors.New("core: argument count does not match parent count")

	// ErrFuncFailed indicates the node's structural function returned an error.
	ErrFuncFailed = errors.New("core: structural function failed")

	// ErrIncompleteValuation indicates SatisfiedBy/Violations received a
	// valuation that does not cover every node of the model.
	ErrIncompleteValuation = errors.New("core: valuation does not cover all nodes")
)

// Func computes one node's value from its parents' values, given in the
// node's declared parent order. Implementations must be pure: no hidden
// state, no side effects, and they must not retain args, which the engine
// reuses as a scratch buffer between calls.
type Func[V comparable] func(args []V) (V, error)

// NodeSpec describes one node for New.
//
// A node with an empty Parents list is exogenous and must have a nil Fn;
// a node with one or more parents is endogenous and must have a non-nil Fn.
type NodeSpec[V comparable] struct {
	// ID uniquely identifies this node within the model.
	ID string

	// Parents lists the node's parent IDs in the order Fn expects its
	// arguments. May be empty (exogenous node).
	Parents []string

	// Fn is the structural function mapping ordered parent values to this
	// node's value. Nil for exogenous nodes.
	Fn Func[V]
}

// Model is an immutable Structural Functional Model over comparable values V.
//
// All fields are fixed at construction; a Model is safe for concurrent use
// by any number of readers without synchronization.
type Model[V comparable] struct {
	// parents maps node ID → declared parent IDs (nil/empty for exogenous).
	parents map[string][]string

	// children maps node ID → sorted child IDs (reverse-edge index,
	// derived from parents at construction).
	children map[string][]string

	// fns maps endogenous node ID → structural function.
	fns map[string]Func[V]

	// exo and endo are the sorted exogenous / endogenous node IDs.
	exo  []string
	endo []string

	// topo is the cached topological order: every node appears after all
	// of its parents. Deterministic for a given construction.
	topo []string

	// edgeCount is the total number of parent→child edges.
	edgeCount int
}
