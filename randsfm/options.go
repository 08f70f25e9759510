// SPDX-License-Identifier: MIT
// Package: sfm/randsfm
//
// options.go — functional options for the randsfm package.
//
// Contract (strict):
//   • Options are functional (type Option func(*randConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generation algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through randConfig.

package randsfm

import (
	"math/rand" // RNG source for stochastic generation
	"strconv"   // decimal node IDs ("0","1",...)
)

// Option customizes model generation by mutating a randConfig instance
// before generation begins. Applying N options costs O(N) time.
type Option func(*randConfig)

// randConfig aggregates all knobs used by RandomModel.
// It is resolved once per call and passed by value (immutable to callers).
type randConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn func(int) string

	// RNG for the rank shuffle, edge trials, and function weights.
	// Nil is rejected by RandomModel with ErrNeedRandSource.
	rng *rand.Rand
}

// newRandConfig constructs a config with deterministic defaults and applies
// all options in order; later options override earlier ones.
func newRandConfig(opts ...Option) randConfig {
	cfg := randConfig{
		idFn: decimalID, // "0","1","2",...
		rng:  nil,       // no RNG unless explicitly set
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("randsfm: WithIDScheme(nil)")
	}

	return func(c *randConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("randsfm: WithRand(nil)")
	}

	return func(c *randConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand seeded with seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *randConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
