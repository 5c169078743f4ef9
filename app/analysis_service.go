package app

import (
	"context"
	"time"

	"astrogen/domain/chart"
	"astrogen/domain/core"
	"astrogen/domain/correlation"
	"astrogen/domain/genetics"
	"astrogen/internal/analysis"
	"astrogen/ports"
)

// AnalysisRequest identifies one subject: a birth moment plus the sample
// holding their genotyped variants.
type AnalysisRequest struct {
	BirthTime time.Time     `json:"birth_time"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	SampleID  core.SampleID `json:"sample_id"`
}

// AnalysisService glues the collaborator ports to the correlation engine.
type AnalysisService struct {
	ephemeris ports.Ephemeris
	variants  ports.VariantStore
	analyzer  *analysis.Analyzer
}

func NewAnalysisService(ephemeris ports.Ephemeris, variants ports.VariantStore, analyzer *analysis.Analyzer) *AnalysisService {
	return &AnalysisService{
		ephemeris: ephemeris,
		variants:  variants,
		analyzer:  analyzer,
	}
}

// RunComprehensive resolves the chart and variants for a subject and runs
// every configured correlation method. Collaborator failures propagate
// unchanged; the core does not retry them.
func (s *AnalysisService) RunComprehensive(ctx context.Context, req AnalysisRequest) (*correlation.ComprehensiveResult, error) {
	c, variants, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.analyzer.RunComprehensive(ctx, c, variants)
}

// RunMethod resolves the subject and runs a single named method.
func (s *AnalysisService) RunMethod(ctx context.Context, name correlation.MethodName, req AnalysisRequest) (correlation.CorrelationResult, error) {
	c, variants, err := s.resolve(ctx, req)
	if err != nil {
		return correlation.CorrelationResult{}, err
	}
	return s.analyzer.RunMethod(ctx, name, c, variants)
}

func (s *AnalysisService) resolve(ctx context.Context, req AnalysisRequest) (*chart.Chart, []genetics.GeneticVariant, error) {
	c, err := s.ephemeris.ChartPositions(ctx, req.BirthTime, req.Latitude, req.Longitude)
	if err != nil {
		return nil, nil, err
	}
	variants, err := s.variants.Variants(ctx, req.SampleID)
	if err != nil {
		return nil, nil, err
	}
	return c, variants, nil
}
