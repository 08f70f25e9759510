// Contrastive forward inference: recompute only what changed exogenous
// inputs can actually reach; copy everything else from the reference run.
package infer

import (
	"fmt"

	"github.com/katalvlaran/sfm/core"
)

// CFI computes the total assignment for m under the new exogenous assignment
// w1Exo, reusing the reference total assignment w0 wherever possible.
//
// w0 must be a total valuation of m (else ErrIncompleteReference) and w1Exo
// must cover exactly m's exogenous nodes, both checked before any evaluation.
// The dirty set is seeded with exogenous nodes whose value differs between
// w1Exo and w0 (plain equality on V) and propagated structurally: an
// endogenous node is dirty iff any parent is dirty. Dirty nodes are
// recomputed; clean nodes copy w0 forward untouched. If no exogenous value
// changed, the result equals w0 and zero functions are invoked.
//
// Correctness relies on the model's functions being pure: a clean node's
// value is unchanged only because all its ancestors feed it the same inputs
// as in the reference run.
//
// Complexity: O(V + E) sweep plus function costs over dirty nodes only.
func CFI[V comparable](m *core.Model[V], w0, w1Exo map[string]V, opts ...Option) (map[string]V, error) {
	// 1. Validate model and both assignments before touching any function.
	if m == nil {
		return nil, ErrModelNil
	}
	o := resolve(opts)
	if err := validateFull(m, w0); err != nil {
		return nil, fmt.Errorf("infer: CFI: %w", err)
	}
	if err := validateExo(m, w1Exo); err != nil {
		return nil, fmt.Errorf("infer: CFI: %w", err)
	}

	// 2. Delegate to the shared contrastive sweep over the whole graph.
	w1, err := contrastSweep(m, w0, w1Exo, nil, o)
	if err != nil {
		return nil, fmt.Errorf("infer: CFI: %w", err)
	}

	return w1, nil
}

// contrastSweep runs the dirty-propagating topological sweep, restricted to
// keep (nil means all nodes). Within the restriction it applies exactly the
// full-CFI dirty/clean logic: exogenous nodes seed the dirty set on value
// inequality, endogenous nodes become dirty when any parent is, dirty nodes
// are recomputed from current parent values and clean nodes copy w0.
//
// keep, when non-nil, must be ancestor-closed (see sweep).
func contrastSweep[V comparable](m *core.Model[V], w0, w1Exo map[string]V, keep map[string]struct{}, o Options) (map[string]V, error) {
	order := m.InternalTopologicalOrder()
	size := len(order)
	if keep != nil {
		size = len(keep)
	}
	w1 := make(map[string]V, size)
	dirty := make(map[string]struct{})

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

		// Exogenous: take the new value; seed dirtiness on inequality.
		if m.IsExogenous(id) {
			v := w1Exo[id]
			w1[id] = v
			if v != w0[id] {
				dirty[id] = struct{}{}
			}
			continue
		}

		// Endogenous: dirty iff any parent is dirty.
		parents := m.InternalParents(id)
		isDirty := false
		for _, p := range parents {
			if _, ok := dirty[p]; ok {
				isDirty = true
				break
			}
		}
		if !isDirty {
			w1[id] = w0[id]
			continue
		}

		// Recompute from current (possibly freshly computed) parent values.
		// Even if the result coincides with w0[id], the node stays dirty:
		// propagation is structural, never value-aware downstream.
		dirty[id] = struct{}{}
		args = args[:0]
		for _, p := range parents {
			args = append(args, w1[p])
		}
		if o.OnEvaluate != nil {
			o.OnEvaluate(id)
		}
		v, err := m.Evaluate(id, args)
		if err != nil {
			return nil, err
		}
		w1[id] = v
	}

	return w1, nil
}
