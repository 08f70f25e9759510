// SPDX-License-Identifier: MIT
// Package: sfm/randsfm
//
// randsfm.go — RandomModel generator and the stock function factories.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); even p∈{0,1} consumes
//     randomness for the rank shuffle.
//   - factory must be non-nil (else ErrNilFactory).
//   - Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) rank shuffle + O(n²) Bernoulli edge trials + factory costs.
//   - Space: O(n + edges).

package randsfm

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sfm/core"
)

// Generation parameter domains (no magic literals).
const (
	minNodes = 1
	probMin  = 0.0
	probMax  = 1.0
)

// FuncFactory produces a structural function for an endogenous node of the
// given arity. Implementations draw their weights from rng at construction
// time; the returned Func itself must be pure and deterministic.
type FuncFactory[V comparable] func(rng *rand.Rand, arity int) core.Func[V]

// RandomModel samples a random SFM with n nodes and independent edge
// probability p over a randomly drawn topological rank. Acyclicity holds by
// construction; the result is a fully validated, immutable core.Model.
//
// Deterministic for fixed (n, p, seed, options, factory): the rank shuffle,
// the edge-trial order (rank ascending, earlier endpoint ascending) and the
// factory's weight draws all consume the same RNG stream.
func RandomModel[V comparable](n int, p float64, factory FuncFactory[V], opts ...Option) (*core.Model[V], error) {
	// 1. Resolve configuration and validate parameters early (fail fast).
	cfg := newRandConfig(opts...)
	if n < minNodes {
		return nil, fmt.Errorf("RandomModel: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomModel: p=%.6f not in [%.1f,%.1f]: %w",
			p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomModel: rng is required: %w", ErrNeedRandSource)
	}
	if factory == nil {
		return nil, fmt.Errorf("RandomModel: factory is nil: %w", ErrNilFactory)
	}
	rng := cfg.rng

	// 2. Draw the topological rank: order[j] is the index of the node at
	//    rank j. Edges only ever point from lower to higher rank.
	order := rng.Perm(n)

	// 3. Sample parents per node with a stable trial order: for each rank j
	//    ascending, try every earlier rank i ascending.
	parentIDs := make([][]string, n) // by rank position j
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			// Strict < keeps both extremes exact: p=0 never fires
			// (Float64 ∈ [0,1)), p=1 always does.
			if rng.Float64() < p {
				parentIDs[j] = append(parentIDs[j], cfg.idFn(order[i]))
			}
		}
	}

	// 4. Assemble node specs in rank order; parentless nodes stay exogenous,
	//    the rest draw a function from the factory.
	specs := make([]core.NodeSpec[V], 0, n)
	for j := 0; j < n; j++ {
		s := core.NodeSpec[V]{ID: cfg.idFn(order[j]), Parents: parentIDs[j]}
		if len(parentIDs[j]) > 0 {
			s.Fn = factory(rng, len(parentIDs[j]))
		}
		specs = append(specs, s)
	}

	// 5. Construct and validate; any failure here is a generator bug, but it
	//    still surfaces as a wrapped error rather than a panic.
	m, err := core.New(specs)
	if err != nil {
		return nil, fmt.Errorf("RandomModel: %w", err)
	}

	return m, nil
}

// RandomLinear is a FuncFactory producing f(x) = Σ aᵢxᵢ + c with weights and
// bias drawn from the standard normal distribution.
func RandomLinear(rng *rand.Rand, arity int) core.Func[float64] {
	a := make([]float64, arity)
	for i := range a {
		a[i] = rng.NormFloat64()
	}
	c := rng.NormFloat64()

	return func(args []float64) (float64, error) {
		s := c
		for i, x := range args {
			s += a[i] * x
		}

		return s, nil
	}
}

// RandomCongruence returns a FuncFactory producing linear congruences
// f(x) = Σ aᵢxᵢ + c (mod m) with weights drawn uniformly from 1..m-1.
// Exact integer arithmetic makes equality-based tests airtight.
// Panics if m < 2 (factory constructor, programmer error).
func RandomCongruence(m int64) FuncFactory[int64] {
	if m < 2 {
		panic("randsfm: RandomCongruence modulus must be at least 2")
	}

	return func(rng *rand.Rand, arity int) core.Func[int64] {
		a := make([]int64, arity)
		for i := range a {
			a[i] = 1 + rng.Int63n(m-1)
		}
		c := 1 + rng.Int63n(m-1)

		return func(args []int64) (int64, error) {
			s := c
			for i, x := range args {
				s += a[i] * x
			}
			s %= m
			if s < 0 {
				s += m
			}

			return s, nil
		}
	}
}

// RandomExoFloats draws a fresh exogenous assignment for m with
// standard-normal values. Intended for driving VFI/CFI in tests.
func RandomExoFloats(m *core.Model[float64], rng *rand.Rand) map[string]float64 {
	exo := m.ExoNodes()
	w := make(map[string]float64, len(exo))
	for _, id := range exo {
		w[id] = rng.NormFloat64()
	}

	return w
}

// RandomExoInts draws a fresh exogenous assignment for m with values uniform
// in [0, mod). Pairs with RandomCongruence(mod).
func RandomExoInts(m *core.Model[int64], rng *rand.Rand, mod int64) map[string]int64 {
	exo := m.ExoNodes()
	w := make(map[string]int64, len(exo))
	for _, id := range exo {
		w[id] = rng.Int63n(mod)
	}

	return w
}
