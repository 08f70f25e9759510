package infer_test

import "math/rand"

// newTestRand returns a deterministic RNG for reproducible fixtures.
// Offset keeps the stream distinct from the one RandomModel consumed.
func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed + 1000))
}
