package memstore

import (
	"context"
	"sync"

	"astrogen/domain/core"
	"astrogen/domain/genetics"
	"astrogen/ports"
)

// VariantStore is an in-memory variant repository for tests and demos.
type VariantStore struct {
	mu      sync.RWMutex
	samples map[core.SampleID][]genetics.GeneticVariant
}

var _ ports.VariantStore = (*VariantStore)(nil)

func NewVariantStore() *VariantStore {
	return &VariantStore{samples: make(map[core.SampleID][]genetics.GeneticVariant)}
}

// Put stores a sample's variants, replacing any previous set.
func (s *VariantStore) Put(sampleID core.SampleID, variants []genetics.GeneticVariant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]genetics.GeneticVariant, len(variants))
	copy(copied, variants)
	s.samples[sampleID] = copied
}

// Variants returns a copy of the sample's variant calls.
func (s *VariantStore) Variants(ctx context.Context, sampleID core.SampleID) ([]genetics.GeneticVariant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	variants, ok := s.samples[sampleID]
	if !ok {
		return nil, core.NewSampleNotFoundError(sampleID.String())
	}
	copied := make([]genetics.GeneticVariant, len(variants))
	copy(copied, variants)
	return copied, nil
}
