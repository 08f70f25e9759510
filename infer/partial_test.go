package infer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfm/infer"
	"github.com/katalvlaran/sfm/randsfm"
)

// TestPartialVFI_Diamond verifies the concrete scenario: targeting {C}
// yields {C:3} and D is never evaluated.
func TestPartialVFI_Diamond(t *testing.T) {
	m := diamond(t)
	var evaluated []string
	w, err := infer.PartialVFI(m, map[string]float64{"A": 1, "B": 2}, []string{"C"},
		infer.WithOnEvaluate(func(id string) { evaluated = append(evaluated, id) }))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"C": 3}, w)
	assert.Equal(t, []string{"C"}, evaluated, "D is outside C's ancestor closure")
}

// TestPartialVFI_TargetExogenous verifies targeting a root evaluates nothing.
func TestPartialVFI_TargetExogenous(t *testing.T) {
	m := diamond(t)
	evals := 0
	w, err := infer.PartialVFI(m, map[string]float64{"A": 1, "B": 2}, []string{"A"},
		infer.WithOnEvaluate(func(string) { evals++ }))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 1}, w)
	assert.Zero(t, evals)
}

// TestPartialVFI_SinkCoversAll verifies targeting the sink evaluates exactly
// as much as full VFI.
func TestPartialVFI_SinkCoversAll(t *testing.T) {
	m := diamond(t)
	wExo := map[string]float64{"A": 1, "B": 2}

	full := 0
	_, err := infer.VFI(m, wExo, infer.WithOnEvaluate(func(string) { full++ }))
	require.NoError(t, err)

	pruned := 0
	w, err := infer.PartialVFI(m, wExo, []string{"D"},
		infer.WithOnEvaluate(func(string) { pruned++ }))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"D": 6}, w)
	assert.Equal(t, full, pruned)
}

// TestPartialVFI_UnknownTarget verifies foreign targets are rejected before
// any evaluation.
func TestPartialVFI_UnknownTarget(t *testing.T) {
	m := diamond(t)
	evals := 0
	_, err := infer.PartialVFI(m, map[string]float64{"A": 1, "B": 2}, []string{"Z"},
		infer.WithOnEvaluate(func(string) { evals++ }))
	assert.ErrorIs(t, err, infer.ErrUnknownTarget)
	assert.Zero(t, evals)
}

// TestPartialVFI_EmptyTargets verifies an empty target set evaluates nothing
// and returns an empty assignment.
func TestPartialVFI_EmptyTargets(t *testing.T) {
	m := diamond(t)
	evals := 0
	w, err := infer.PartialVFI(m, map[string]float64{"A": 1, "B": 2}, nil,
		infer.WithOnEvaluate(func(string) { evals++ }))
	require.NoError(t, err)
	assert.Empty(t, w)
	assert.Zero(t, evals)
}

// TestPartialVFI_AgreesWithFull_Random verifies partial/full agreement on
// seeded random models for assorted target subsets, and evaluation-count
// monotonicity along the way.
func TestPartialVFI_AgreesWithFull_Random(t *testing.T) {
	const (
		nodes = 25
		prob  = 0.25
	)
	for seed := int64(0); seed < 5; seed++ {
		m, err := randsfm.RandomModel(nodes, prob, randsfm.RandomLinear,
			randsfm.WithSeed(seed))
		require.NoError(t, err)

		rng := newTestRand(seed)
		wExo := randsfm.RandomExoFloats(m, rng)

		fullEvals := 0
		full, err := infer.VFI(m, wExo, infer.WithOnEvaluate(func(string) { fullEvals++ }))
		require.NoError(t, err)

		all := m.Nodes()
		for _, targets := range [][]string{
			{all[0]},
			{all[len(all)-1]},
			{all[0], all[len(all)/2], all[len(all)-1]},
			all,
		} {
			partEvals := 0
			part, err := infer.PartialVFI(m, wExo, targets,
				infer.WithOnEvaluate(func(string) { partEvals++ }))
			require.NoError(t, err)

			assert.Len(t, part, len(targets))
			for _, id := range targets {
				assert.Equal(t, full[id], part[id], "seed %d target %s", seed, id)
			}
			assert.LessOrEqual(t, partEvals, fullEvals)
		}
	}
}

// TestPartialCFI_Diamond verifies target pruning composed with dirty
// propagation: changing B and targeting {C} recomputes C only.
func TestPartialCFI_Diamond(t *testing.T) {
	m := diamond(t)
	w0 := map[string]float64{"A": 1, "B": 2, "C": 3, "D": 6}

	var evaluated []string
	w, err := infer.PartialCFI(m, w0, map[string]float64{"A": 1, "B": 5}, []string{"C"},
		infer.WithOnEvaluate(func(id string) { evaluated = append(evaluated, id) }))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"C": 6}, w)
	assert.Equal(t, []string{"C"}, evaluated)
}

// TestPartialCFI_CleanTarget verifies a target outside the dirty downstream
// copies its reference value with zero evaluations.
func TestPartialCFI_CleanTarget(t *testing.T) {
	m := diamond(t)
	w0 := map[string]float64{"A": 1, "B": 2, "C": 3, "D": 6}

	evals := 0
	w, err := infer.PartialCFI(m, w0, map[string]float64{"A": 1, "B": 2}, []string{"D"},
		infer.WithOnEvaluate(func(string) { evals++ }))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"D": 6}, w)
	assert.Zero(t, evals)
}

// TestPartialCFI_InputErrors verifies the full input-validation set.
func TestPartialCFI_InputErrors(t *testing.T) {
	m := diamond(t)
	w0 := map[string]float64{"A": 1, "B": 2, "C": 3, "D": 6}
	w1 := map[string]float64{"A": 1, "B": 5}

	_, err := infer.PartialCFI(m, w0, w1, []string{"Z"})
	assert.ErrorIs(t, err, infer.ErrUnknownTarget)

	_, err = infer.PartialCFI(m, map[string]float64{"A": 1}, w1, []string{"C"})
	assert.ErrorIs(t, err, infer.ErrIncompleteReference)

	_, err = infer.PartialCFI(m, w0, map[string]float64{"A": 1}, []string{"C"})
	assert.ErrorIs(t, err, infer.ErrMissingExogenous)

	_, err = infer.PartialCFI[float64](nil, w0, w1, []string{"C"})
	assert.ErrorIs(t, err, infer.ErrModelNil)
}

// TestPartialCFI_AgreesWithFull_Random verifies partial CFI matches the
// restriction of full CFI on seeded random congruence models.
func TestPartialCFI_AgreesWithFull_Random(t *testing.T) {
	const (
		nodes = 25
		prob  = 0.25
		mod   = 7
	)
	for seed := int64(0); seed < 5; seed++ {
		m, err := randsfm.RandomModel(nodes, prob, randsfm.RandomCongruence(mod),
			randsfm.WithSeed(seed))
		require.NoError(t, err)

		rng := newTestRand(seed)
		w0, err := infer.VFI(m, randsfm.RandomExoInts(m, rng, mod))
		require.NoError(t, err)
		wExo1 := randsfm.RandomExoInts(m, rng, mod)

		full, err := infer.CFI(m, w0, wExo1)
		require.NoError(t, err)

		all := m.Nodes()
		targets := []string{all[0], all[len(all)/3], all[len(all)-1]}
		part, err := infer.PartialCFI(m, w0, wExo1, targets)
		require.NoError(t, err)

		assert.Len(t, part, len(targets))
		for _, id := range targets {
			assert.Equal(t, full[id], part[id], "seed %d target %s", seed, id)
		}
	}
}
