// Package mapgen - RNG utilities shared by all generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical grid.
//   - Encapsulation: every generator receives its stream as an argument;
//     nothing reads math/rand's global source.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Each Generate call owns its streams.
package mapgen

import "math/rand"

// mixedSecondaryOffset is added to the caller's seed to derive the stream
// of the clustered component of a Mixed map.
const mixedSecondaryOffset int64 = 1

// NewRand returns a deterministic *rand.Rand seeded verbatim with seed.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// intInclusive returns a uniform integer in [lo, hi].
func intInclusive(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
