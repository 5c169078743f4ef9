package ports

import (
	"context"

	"astrogen/domain/core"
	"astrogen/domain/genetics"
)

// VariantStore retrieves a subject's genetic variant calls.
// Fails with core.ErrSampleNotFound for unknown sample identifiers.
type VariantStore interface {
	Variants(ctx context.Context, sampleID core.SampleID) ([]genetics.GeneticVariant, error)
}
