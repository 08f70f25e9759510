// Vanilla forward inference: one topological sweep, every node once.
package infer

import (
	"fmt"

	"github.com/katalvlaran/sfm/core"
)

// VFI computes a total assignment for m from the exogenous assignment wExo.
//
// wExo must cover exactly m's exogenous nodes (else ErrMissingExogenous /
// ErrUnexpectedNode, before any evaluation). Each endogenous node is
// evaluated exactly once, in topological order, so the result is
// deterministic for deterministic functions.
//
// Complexity: O(V + E) plus function costs; one map of size V is allocated
// for the result.
func VFI[V comparable](m *core.Model[V], wExo map[string]V, opts ...Option) (map[string]V, error) {
	// 1. Validate model and inputs before touching any function.
	if m == nil {
		return nil, ErrModelNil
	}
	o := resolve(opts)
	if err := validateExo(m, wExo); err != nil {
		return nil, fmt.Errorf("infer: VFI: %w", err)
	}

	// 2. Delegate to the shared sweep over the whole graph.
	w, err := sweep(m, wExo, nil, o)
	if err != nil {
		return nil, fmt.Errorf("infer: VFI: %w", err)
	}

	return w, nil
}

// sweep evaluates the nodes of m in topological order, restricted to keep
// (nil means all nodes). Exogenous values come from wExo; endogenous values
// from the node's structural function over already-computed parents.
//
// keep, when non-nil, must be ancestor-closed: every parent of a kept node
// is kept. The ancestor closure computed by relevant() guarantees this.
func sweep[V comparable](m *core.Model[V], wExo map[string]V, keep map[string]struct{}, o Options) (map[string]V, error) {
	order := m.InternalTopologicalOrder()
	size := len(order)
	if keep != nil {
		size = len(keep)
	}
	w := make(map[string]V, size)

	var args []V // scratch buffer, reused across nodes
	for _, id := range order {
		if keep != nil {
			if _, ok := keep[id]; !ok {
				continue
			}
		}

		// Cancellation check between node evaluations.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if m.IsExogenous(id) {
			w[id] = wExo[id]
			continue
		}

		args = args[:0]
		for _, p := range m.InternalParents(id) {
			args = append(args, w[p])
		}
		if o.OnEvaluate != nil {
			o.OnEvaluate(id)
		}
		v, err := m.Evaluate(id, args)
		if err != nil {
			return nil, err
		}
		w[id] = v
	}

	return w, nil
}
