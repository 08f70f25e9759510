// Query and evaluation methods on Model.
//
// All accessors that hand out slices return fresh copies so callers cannot
// corrupt the immutable model; InternalParents is the documented exception
// for hot paths.
package core

import (
	"fmt"
	"sort"
)

// Has reports whether id is a node of the model. O(1).
func (m *Model[V]) Has(id string) bool {
	_, ok := m.parents[id]

	return ok
}

// Parents returns the node's parent IDs in declared (function-argument)
// order. The slice is a fresh copy; it is empty for exogenous nodes and
// nil for unknown ones. O(deg).
func (m *Model[V]) Parents(id string) []string {
	ps, ok := m.parents[id]
	if !ok {
		return nil
	}
	out := make([]string, len(ps))
	copy(out, ps)

	return out
}

// InternalParents returns the live parent slice without copying.
// Callers must treat it as read-only; intended for inference hot paths.
func (m *Model[V]) InternalParents(id string) []string {
	return m.parents[id]
}

// Children returns the node's child IDs, sorted. The slice is a fresh copy;
// it is empty for sinks and nil for unknown nodes. O(deg).
func (m *Model[V]) Children(id string) []string {
	if !m.Has(id) {
		return nil
	}
	cs := m.children[id]
	out := make([]string, len(cs))
	copy(out, cs)

	return out
}

// IsExogenous reports whether id is a root (parentless) node. False for
// unknown IDs. O(1).
func (m *Model[V]) IsExogenous(id string) bool {
	ps, ok := m.parents[id]

	return ok && len(ps) == 0
}

// Nodes returns all node IDs, sorted. O(V).
func (m *Model[V]) Nodes() []string {
	out := make([]string, 0, len(m.exo)+len(m.endo))
	out = append(out, m.exo...)
	out = append(out, m.endo...)
	// exo and endo are each sorted but interleave; resort once.
	sort.Strings(out)

	return out
}

// ExoNodes returns the exogenous node IDs, sorted. O(V).
func (m *Model[V]) ExoNodes() []string {
	out := make([]string, len(m.exo))
	copy(out, m.exo)

	return out
}

// EndoNodes returns the endogenous node IDs, sorted. O(V).
func (m *Model[V]) EndoNodes() []string {
	out := make([]string, len(m.endo))
	copy(out, m.endo)

	return out
}

// TopologicalOrder returns all node IDs such that every node appears after
// all of its parents. The order is computed once at construction and is
// deterministic; the returned slice is a fresh copy. O(V).
func (m *Model[V]) TopologicalOrder() []string {
	out := make([]string, len(m.topo))
	copy(out, m.topo)

	return out
}

// InternalTopologicalOrder returns the cached order without copying.
// Callers must treat it as read-only; intended for inference hot paths.
func (m *Model[V]) InternalTopologicalOrder() []string {
	return m.topo
}

// NodeCount returns the number of nodes. O(1).
func (m *Model[V]) NodeCount() int { return len(m.exo) + len(m.endo) }

// EdgeCount returns the number of parent→child edges. O(1).
func (m *Model[V]) EdgeCount() int { return m.edgeCount }

// Evaluate invokes the structural function of node id on args, which must
// hold the parent values in declared order.
//
// Errors: ErrNodeNotFound for unknown IDs, ErrExogenousEval for roots,
// ErrArityMismatch when len(args) differs from the parent count, and
// ErrFuncFailed (wrapping the function's own error) when the function fails.
func (m *Model[V]) Evaluate(id string, args []V) (V, error) {
	var zero V
	ps, ok := m.parents[id]
	if !ok {
		return zero, fmt.Errorf("node %q: %w", id, ErrNodeNotFound)
	}
	if len(ps) == 0 {
		return zero, fmt.Errorf("node %q: %w", id, ErrExogenousEval)
	}
	if len(args) != len(ps) {
		return zero, fmt.Errorf("node %q: got %d args, want %d: %w",
			id, len(args), len(ps), ErrArityMismatch)
	}

	v, err := m.fns[id](args)
	if err != nil {
		return zero, fmt.Errorf("node %q: %w: %w", id, ErrFuncFailed, err)
	}

	return v, nil
}
