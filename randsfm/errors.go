// SPDX-License-Identifier: MIT
// Package: sfm/randsfm
//
// errors.go — sentinel errors for the randsfm package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via %w wrapping; algorithms never panic
//     at runtime — validation panics are confined to option constructors and
//     factory constructors (WithX / RandomCongruence).

package randsfm

import "errors"

// ErrTooFewNodes indicates the requested node count is below the minimum (1).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* fix n */ }.
var ErrTooFewNodes = errors.New("randsfm: node count too small")

// ErrInvalidProbability indicates the edge probability lies outside [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("randsfm: probability out of range")

// ErrNeedRandSource indicates no RNG was configured; generation is stochastic
// by nature, so WithSeed or WithRand is mandatory.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("randsfm: rng is required")

// ErrNilFactory indicates RandomModel received a nil FuncFactory.
// Usage: if errors.Is(err, ErrNilFactory) { /* supply a factory */ }.
var ErrNilFactory = errors.New("randsfm: function factory is nil")
