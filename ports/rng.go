package ports

import (
	"math/rand"
)

// RNG provides seeded random number streams for deterministic resampling.
// Bootstrap and permutation stages for the same (run, method) pair must
// draw from the same stream so repeated runs produce identical results.
type RNG interface {
	// Stream returns a deterministic generator for a named operation.
	Stream(name string, seed int64) *rand.Rand
}
