package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamDeterministic(t *testing.T) {
	s := NewSeeded(42)

	a := s.Stream("dignity", 7)
	b := s.Stream("dignity", 7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestStreamsAreIndependent(t *testing.T) {
	s := NewSeeded(42)

	dignity := s.Stream("dignity", 7).Int63()
	pathway := s.Stream("pathway", 7).Int63()
	assert.NotEqual(t, dignity, pathway)

	reseeded := s.Stream("dignity", 8).Int63()
	assert.NotEqual(t, dignity, reseeded)
}

func TestBaseSeedShiftsAllStreams(t *testing.T) {
	first := NewSeeded(1).Stream("dignity", 7).Int63()
	second := NewSeeded(2).Stream("dignity", 7).Int63()
	assert.NotEqual(t, first, second)
}
