package randsfm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfm/infer"
	"github.com/katalvlaran/sfm/randsfm"
)

// TestRandomModel_Validation covers every parameter error.
func TestRandomModel_Validation(t *testing.T) {
	_, err := randsfm.RandomModel(0, 0.5, randsfm.RandomLinear, randsfm.WithSeed(1))
	assert.ErrorIs(t, err, randsfm.ErrTooFewNodes)

	_, err = randsfm.RandomModel(5, -0.1, randsfm.RandomLinear, randsfm.WithSeed(1))
	assert.ErrorIs(t, err, randsfm.ErrInvalidProbability)

	_, err = randsfm.RandomModel(5, 1.1, randsfm.RandomLinear, randsfm.WithSeed(1))
	assert.ErrorIs(t, err, randsfm.ErrInvalidProbability)

	_, err = randsfm.RandomModel(5, 0.5, randsfm.RandomLinear)
	assert.ErrorIs(t, err, randsfm.ErrNeedRandSource)

	_, err = randsfm.RandomModel[float64](5, 0.5, nil, randsfm.WithSeed(1))
	assert.ErrorIs(t, err, randsfm.ErrNilFactory)
}

// TestRandomModel_Deterministic verifies identical seeds yield identical
// structure and identical inference results.
func TestRandomModel_Deterministic(t *testing.T) {
	const (
		n    = 30
		p    = 0.3
		seed = 99
	)
	m1, err := randsfm.RandomModel(n, p, randsfm.RandomLinear, randsfm.WithSeed(seed))
	require.NoError(t, err)
	m2, err := randsfm.RandomModel(n, p, randsfm.RandomLinear, randsfm.WithSeed(seed))
	require.NoError(t, err)

	assert.Equal(t, m1.Nodes(), m2.Nodes())
	assert.Equal(t, m1.ExoNodes(), m2.ExoNodes())
	assert.Equal(t, m1.EdgeCount(), m2.EdgeCount())
	for _, id := range m1.Nodes() {
		assert.Equal(t, m1.Parents(id), m2.Parents(id), "parents of %s", id)
	}

	// Same exogenous input through both models: functions must match too.
	rng := rand.New(rand.NewSource(7))
	wExo := randsfm.RandomExoFloats(m1, rng)
	w1, err := infer.VFI(m1, wExo)
	require.NoError(t, err)
	w2, err := infer.VFI(m2, wExo)
	require.NoError(t, err)
	assert.Equal(t, w1, w2)
}

// TestRandomModel_SeedSensitivity verifies different seeds produce different
// structures (overwhelmingly likely at this size).
func TestRandomModel_SeedSensitivity(t *testing.T) {
	m1, err := randsfm.RandomModel(30, 0.3, randsfm.RandomLinear, randsfm.WithSeed(1))
	require.NoError(t, err)
	m2, err := randsfm.RandomModel(30, 0.3, randsfm.RandomLinear, randsfm.WithSeed(2))
	require.NoError(t, err)

	same := m1.EdgeCount() == m2.EdgeCount()
	if same {
		for _, id := range m1.Nodes() {
			if !assert.ObjectsAreEqual(m1.Parents(id), m2.Parents(id)) {
				same = false
				break
			}
		}
	}
	assert.False(t, same, "distinct seeds should alter the sampled structure")
}

// TestRandomModel_ProbabilityExtremes verifies p=0 gives isolated roots and
// p=1 gives the complete DAG over the drawn rank.
func TestRandomModel_ProbabilityExtremes(t *testing.T) {
	const n = 10

	iso, err := randsfm.RandomModel(n, 0, randsfm.RandomLinear, randsfm.WithSeed(5))
	require.NoError(t, err)
	assert.Len(t, iso.ExoNodes(), n)
	assert.Zero(t, iso.EdgeCount())

	full, err := randsfm.RandomModel(n, 1, randsfm.RandomLinear, randsfm.WithSeed(5))
	require.NoError(t, err)
	assert.Len(t, full.ExoNodes(), 1)
	assert.Equal(t, n*(n-1)/2, full.EdgeCount())
}

// TestRandomModel_InferenceConsistency verifies a VFI run over a generated
// model satisfies every sampled function.
func TestRandomModel_InferenceConsistency(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		m, err := randsfm.RandomModel(20, 0.5, randsfm.RandomLinear, randsfm.WithSeed(seed))
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(seed))
		w, err := infer.VFI(m, randsfm.RandomExoFloats(m, rng))
		require.NoError(t, err)

		ok, err := m.SatisfiedBy(w)
		require.NoError(t, err)
		assert.True(t, ok, "seed %d", seed)
	}
}

// TestRandomModel_TopologicalValidity verifies every generated model's
// cached order places each node after all of its parents.
func TestRandomModel_TopologicalValidity(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		m, err := randsfm.RandomModel(40, 0.2, randsfm.RandomLinear, randsfm.WithSeed(seed))
		require.NoError(t, err)

		order := m.TopologicalOrder()
		pos := make(map[string]int, len(order))
		for i, id := range order {
			pos[id] = i
		}
		for _, id := range order {
			for _, p := range m.Parents(id) {
				assert.Less(t, pos[p], pos[id], "seed %d: parent %s of %s", seed, p, id)
			}
		}
	}
}

// TestRandomCongruence_Domain verifies congruence outputs stay in [0, m).
func TestRandomCongruence_Domain(t *testing.T) {
	const mod = 5
	m, err := randsfm.RandomModel(20, 0.5, randsfm.RandomCongruence(mod),
		randsfm.WithSeed(3))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	w, err := infer.VFI(m, randsfm.RandomExoInts(m, rng, mod))
	require.NoError(t, err)
	for id, v := range w {
		assert.GreaterOrEqual(t, v, int64(0), "node %s", id)
		assert.Less(t, v, int64(mod), "node %s", id)
	}
}

// TestRandomCongruence_BadModulus verifies the factory constructor panics on
// a meaningless modulus.
func TestRandomCongruence_BadModulus(t *testing.T) {
	assert.Panics(t, func() { randsfm.RandomCongruence(1) })
}

// TestWithIDScheme verifies a custom ID scheme flows through generation.
func TestWithIDScheme(t *testing.T) {
	m, err := randsfm.RandomModel(3, 0, randsfm.RandomLinear,
		randsfm.WithSeed(1),
		randsfm.WithIDScheme(func(i int) string { return string(rune('a' + i)) }))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, m.Nodes())
}

// TestOptionPanics verifies option constructors reject nil inputs eagerly.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { randsfm.WithIDScheme(nil) })
	assert.Panics(t, func() { randsfm.WithRand(nil) })
}
