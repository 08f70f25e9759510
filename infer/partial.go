// Target-pruned inference: restrict evaluation to the ancestor closure of
// the requested targets, then project onto the targets.
//
// Both partial variants are thin wrappers: compute the relevant set R, run
// the corresponding sweep restricted to R, keep only the targets. Nodes
// outside R are never evaluated, never tested for dirtiness, and never
// appear in the output.
package infer

import (
	"fmt"

	"github.com/katalvlaran/sfm/core"
)

// PartialVFI computes the values of targets only, evaluating no node outside
// the targets' ancestor closure.
//
// wExo must still cover exactly m's exogenous nodes (values of pruned roots
// are simply never read), and every target must be a node of m (else
// ErrUnknownTarget). The returned map holds exactly the targets. The number
// of structural-function calls is ≤ that of full VFI, with equality exactly
// when the closure covers every endogenous node.
//
// Complexity: O(V) order scan; gathering and evaluation are confined to R.
func PartialVFI[V comparable](m *core.Model[V], wExo map[string]V, targets []string, opts ...Option) (map[string]V, error) {
	// 1. Validate model, targets, and the exogenous assignment up front.
	if m == nil {
		return nil, ErrModelNil
	}
	o := resolve(opts)
	if err := validateTargets(m, targets); err != nil {
		return nil, fmt.Errorf("infer: PartialVFI: %w", err)
	}
	if err := validateExo(m, wExo); err != nil {
		return nil, fmt.Errorf("infer: PartialVFI: %w", err)
	}

	// 2. Prune to the relevant subgraph and sweep it.
	keep := relevant(m, targets)
	w, err := sweep(m, wExo, keep, o)
	if err != nil {
		return nil, fmt.Errorf("infer: PartialVFI: %w", err)
	}

	// 3. Project onto the targets.
	return project(w, targets), nil
}

// PartialCFI is the contrastive analogue of PartialVFI: within the targets'
// ancestor closure it applies the full-CFI dirty/clean logic against the
// reference w0, and returns only the targets' values.
//
// Input rules are those of CFI plus ErrUnknownTarget for foreign targets.
func PartialCFI[V comparable](m *core.Model[V], w0, w1Exo map[string]V, targets []string, opts ...Option) (map[string]V, error) {
	// 1. Validate model, targets, and both assignments up front.
	if m == nil {
		return nil, ErrModelNil
	}
	o := resolve(opts)
	if err := validateTargets(m, targets); err != nil {
		return nil, fmt.Errorf("infer: PartialCFI: %w", err)
	}
	if err := validateFull(m, w0); err != nil {
		return nil, fmt.Errorf("infer: PartialCFI: %w", err)
	}
	if err := validateExo(m, w1Exo); err != nil {
		return nil, fmt.Errorf("infer: PartialCFI: %w", err)
	}

	// 2. Prune to the relevant subgraph and run the contrastive sweep on it.
	keep := relevant(m, targets)
	w1, err := contrastSweep(m, w0, w1Exo, keep, o)
	if err != nil {
		return nil, fmt.Errorf("infer: PartialCFI: %w", err)
	}

	// 3. Project onto the targets.
	return project(w1, targets), nil
}

// relevant computes R = ∪ {t} ∪ ancestors(t) over all targets via an
// iterative reverse-edge walk (stack over parent lists, deduplicated).
// R is ancestor-closed by construction, which is what the restricted
// sweeps rely on. Complexity: O(|R| + edges into R).
func relevant[V comparable](m *core.Model[V], targets []string) map[string]struct{} {
	r := make(map[string]struct{}, len(targets))
	stack := make([]string, 0, len(targets))
	for _, t := range targets {
		if _, seen := r[t]; !seen {
			r[t] = struct{}{}
			stack = append(stack, t)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range m.InternalParents(id) {
			if _, seen := r[p]; !seen {
				r[p] = struct{}{}
				stack = append(stack, p)
			}
		}
	}

	return r
}

// project restricts w to the target IDs.
func project[V comparable](w map[string]V, targets []string) map[string]V {
	out := make(map[string]V, len(targets))
	for _, t := range targets {
		out[t] = w[t]
	}

	return out
}
