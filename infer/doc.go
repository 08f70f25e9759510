// Package infer implements forward inference over core.Model: vanilla,
// contrastive, and target-pruned partial variants, plus sparse contrast
// encoding of assignments.
//
// Key features:
//   - VFI(m, wExo, opts...): full forward inference — one topological sweep,
//     every endogenous node evaluated exactly once
//   - CFI(m, w0, w1Exo, opts...): contrastive inference — seeds a dirty set
//     from changed exogenous values, propagates dirtiness downstream, and
//     recomputes only dirty nodes; clean values are copied from the reference
//   - PartialVFI / PartialCFI: prune to the ancestor closure of the requested
//     targets first, then run the same sweep restricted to that closure and
//     project onto the targets
//   - ContrastEncode / ContrastDecode: sparse delta representation of an
//     assignment against a reference
//   - Hooks: WithOnEvaluate observes every structural-function invocation
//     (evaluation counting in tests and benchmarks)
//   - Cancellation via context.Context (WithContext)
//
// All input validation happens before any function is invoked, and any
// evaluation failure aborts the call with no partial result.
//
// Dirty propagation is structural, not value-aware: a node with a dirty
// ancestor is recomputed even if the new value happens to coincide with the
// reference (non-injective functions masking an upstream change). Correctness
// over minimality.
//
// Complexity (R = restricted node set, whole graph for the full variants):
//
//   - Time:   O(V) order scan + edges within R + Σ function costs over
//     dirty/R nodes
//   - Memory: O(|R|) for the output assignment and dirty set
//
// Options:
//
//   - WithContext(ctx)       allows cancellation via context.Context.
//   - WithOnEvaluate(fn)     hook invoked with the node ID before each
//     structural-function call.
//
// Errors:
//
//   - ErrModelNil            if m is nil.
//   - ErrMissingExogenous    if wExo / w1Exo misses an exogenous node.
//   - ErrUnexpectedNode      if an exogenous assignment carries a key that is
//     not an exogenous node of the model.
//   - ErrIncompleteReference if w0 does not cover every node (CFI variants).
//   - ErrUnknownTarget       if a target is not a node of the model.
//   - ErrReferenceMissing    if ContrastEncode meets a node absent from the
//     reference.
//   - context.Canceled       if ctx is done mid-sweep.
//   - core.ErrFuncFailed / core.ErrArityMismatch, wrapped, when evaluation fails.
package infer
