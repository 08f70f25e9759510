// Per-call input validation. All checks run before any structural function
// is invoked, so a failed call never returns (or leaks) a partial assignment.
package infer

import (
	"fmt"

	"github.com/katalvlaran/sfm/core"
)

// validateExo checks that w covers exactly the exogenous nodes of m:
// no exogenous node missing, no foreign or endogenous key present.
// Complexity: O(|exo| + |w|).
func validateExo[V comparable](m *core.Model[V], w map[string]V) error {
	for _, id := range m.ExoNodes() {
		if _, ok := w[id]; !ok {
			return fmt.Errorf("node %q: %w", id, ErrMissingExogenous)
		}
	}
	for id := range w {
		if !m.IsExogenous(id) {
			return fmt.Errorf("node %q: %w", id, ErrUnexpectedNode)
		}
	}

	return nil
}

// validateFull checks that w is a total valuation of m: every node present,
// no foreign key. Complexity: O(V + |w|).
func validateFull[V comparable](m *core.Model[V], w map[string]V) error {
	for id := range w {
		if !m.Has(id) {
			return fmt.Errorf("node %q: %w", id, ErrIncompleteReference)
		}
	}
	if len(w) != m.NodeCount() {
		return fmt.Errorf("got %d of %d nodes: %w",
			len(w), m.NodeCount(), ErrIncompleteReference)
	}

	return nil
}

// validateTargets checks that every target is a node of m.
// Complexity: O(|targets|).
func validateTargets[V comparable](m *core.Model[V], targets []string) error {
	for _, id := range targets {
		if !m.Has(id) {
			return fmt.Errorf("node %q: %w", id, ErrUnknownTarget)
		}
	}

	return nil
}
