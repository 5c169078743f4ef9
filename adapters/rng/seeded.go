package rng

import (
	"hash/fnv"
	"math/rand"

	"astrogen/ports"
)

// Seeded derives independent deterministic streams from a base seed and a
// stream name, so repeated runs reproduce the same resampling draws.
type Seeded struct {
	base int64
}

var _ ports.RNG = (*Seeded)(nil)

func NewSeeded(base int64) *Seeded {
	return &Seeded{base: base}
}

// Stream returns a generator seeded by the base seed, the caller's seed,
// and the stream name hash.
func (s *Seeded) Stream(name string, seed int64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(s.base ^ seed ^ int64(h.Sum64()&0x7fffffffffffffff)))
}
