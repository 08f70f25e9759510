// Whole-assignment consistency checks.
//
// SatisfiedBy answers whether a total valuation is a fixed point of every
// structural function; Violations reports each offending node with the
// expected and actual value, which is the more useful form when debugging
// a hand-built model or a suspect inference result.
package core

import "fmt"

// Violation records one node whose value contradicts its structural function
// under a given total valuation.
type Violation[V comparable] struct {
	// Node is the offending node's ID.
	Node string

	// Expected is the value computed from the node's parents.
	Expected V

	// Actual is the value found in the checked valuation.
	Actual V
}

// SatisfiedBy reports whether w is a total valuation satisfying every
// structural function of the model: for each endogenous node, w's value
// must equal the function applied to w's parent values.
//
// Returns ErrIncompleteValuation if w misses any node, ErrNodeNotFound if w
// contains an unknown node, or an evaluation error from a failing function.
// Complexity: O(V + E) plus function costs.
func (m *Model[V]) SatisfiedBy(w map[string]V) (bool, error) {
	vs, err := m.Violations(w)
	if err != nil {
		return false, err
	}

	return len(vs) == 0, nil
}

// Violations returns every node whose value in w disagrees with its
// structural function, with the expected value computed from w's parent
// values. An empty result means w satisfies the model.
//
// Input rules and complexity match SatisfiedBy.
func (m *Model[V]) Violations(w map[string]V) ([]Violation[V], error) {
	// 1. Validate coverage both ways before touching any function.
	for id := range w {
		if !m.Has(id) {
			return nil, fmt.Errorf("node %q: %w", id, ErrNodeNotFound)
		}
	}
	if len(w) != m.NodeCount() {
		return nil, fmt.Errorf("got %d of %d nodes: %w",
			len(w), m.NodeCount(), ErrIncompleteValuation)
	}

	// 2. Recompute each endogenous node from its parents and compare.
	var out []Violation[V]
	var args []V // scratch, reused across nodes
	for _, id := range m.endo {
		ps := m.parents[id]
		args = args[:0]
		for _, p := range ps {
			args = append(args, w[p])
		}
		expected, err := m.Evaluate(id, args)
		if err != nil {
			return nil, err
		}
		if actual := w[id]; actual != expected {
			out = append(out, Violation[V]{Node: id, Expected: expected, Actual: actual})
		}
	}

	return out, nil
}
