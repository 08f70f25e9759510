// Package infer defines the options and sentinel errors shared by all four
// inference entry points.
package infer

import (
	"context"
	"errors"
)

var (
	// ErrModelNil is returned when a nil *core.Model is passed to any
	// inference entry point.
	ErrModelNil = errors.New("infer: model is nil")

	// ErrMissingExogenous indicates the exogenous assignment does not cover
	// every exogenous node of the model.
	ErrMissingExogenous = errors.New("infer: exogenous assignment misses a node")

	// ErrUnexpectedNode indicates an exogenous assignment carries a key that
	// is not an exogenous node of the model (unknown or endogenous).
	ErrUnexpectedNode = errors.New("infer: assignment contains a non-exogenous node")

	// ErrIncompleteReference indicates the reference assignment passed to a
	// contrastive variant is not a total valuation of the model.
	ErrIncompleteReference = errors.New("infer: reference assignment is not total")

	// ErrUnknownTarget indicates a requested target is not a node of the model.
	ErrUnknownTarget = errors.New("infer: target not in model")

	// ErrReferenceMissing indicates ContrastEncode met a node that does not
	// exist in the reference valuation.
	ErrReferenceMissing = errors.New("infer: node missing from reference valuation")
)

// Option configures optional behavior of an inference call.
type Option func(*Options)

// Options holds configurable parameters for inference sweeps.
// Both knobs are observational; neither changes the computed assignment.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the sweep between node evaluations.
	Ctx context.Context

	// OnEvaluate, if non-nil, is invoked with the node ID immediately before
	// each structural-function call. Useful for evaluation counting and
	// instrumentation; it must not mutate the model or assignments.
	OnEvaluate func(id string)
}

// DefaultOptions returns an Options struct with a Background context and
// no evaluation hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnEvaluate: nil,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEvaluate returns an Option that installs fn as the per-evaluation
// hook. The hook fires once per structural-function invocation.
func WithOnEvaluate(fn func(id string)) Option {
	return func(o *Options) {
		o.OnEvaluate = fn
	}
}

// resolve applies opts over defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
