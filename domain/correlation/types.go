package correlation

import (
	"math"

	"astrogen/domain/core"
)

// MethodName identifies one of the closed set of correlation methods.
type MethodName string

const (
	MethodDignity   MethodName = "dignity"
	MethodPathway   MethodName = "pathway"
	MethodPolygenic MethodName = "polygenic"
	MethodAspect    MethodName = "aspect"
)

// AllMethods lists every method in canonical order.
var AllMethods = []MethodName{MethodDignity, MethodPathway, MethodPolygenic, MethodAspect}

// IsValid reports whether m names a known method.
func (m MethodName) IsValid() bool {
	for _, known := range AllMethods {
		if m == known {
			return true
		}
	}
	return false
}

// PairedObservation is the atomic input to correlation: one astro/genetic
// score pair for a comparable unit. Unit labels must be unique within a
// method to prevent double counting.
type PairedObservation struct {
	Method       MethodName `json:"method"`
	AstroValue   float64    `json:"astro_value"`
	GeneticValue float64    `json:"genetic_value"`
	UnitLabel    string     `json:"unit_label"`
}

// CoefficientKind records which correlation statistic was chosen as primary.
type CoefficientKind string

const (
	Pearson  CoefficientKind = "pearson"
	Spearman CoefficientKind = "spearman"
)

// CorrelationResult is the validated outcome for one method.
// Invariants: CILow <= Coefficient <= CIHigh; AdjustedPValue >= PValue.
type CorrelationResult struct {
	Method         MethodName      `json:"method"`
	Kind           CoefficientKind `json:"kind"`
	Coefficient    float64         `json:"coefficient"` // [-1,1]
	CILow          float64         `json:"ci_low"`
	CIHigh         float64         `json:"ci_high"`
	PValue         float64         `json:"p_value"`          // unadjusted, [0,1]
	AdjustedPValue float64         `json:"adjusted_p_value"` // >= PValue after correction
	NObservations  int             `json:"n_observations"`
	Warnings       []string        `json:"warnings,omitempty"`
}

// Undefined reports whether the coefficient is the undefined-correlation sentinel.
func (r CorrelationResult) Undefined() bool {
	return math.IsNaN(r.Coefficient)
}

// CIWidth returns the width of the bootstrap confidence interval.
func (r CorrelationResult) CIWidth() float64 {
	return r.CIHigh - r.CILow
}

// MethodFailure records why a method was excluded from aggregation.
type MethodFailure struct {
	Method MethodName `json:"method"`
	Code   string     `json:"code"`
	Reason string     `json:"reason"`
}

// ComprehensiveResult aggregates every configured method for one subject.
// Constructed once per analysis run, immutable thereafter.
type ComprehensiveResult struct {
	RunID             core.RunID                       `json:"run_id"`
	PerMethod         map[MethodName]CorrelationResult `json:"per_method"`
	Skipped           []MethodFailure                  `json:"skipped,omitempty"`
	OverallScore      float64                          `json:"overall_score"`      // [-1,1]
	OverallConfidence float64                          `json:"overall_confidence"` // [0,1]
	Interpretation    string                           `json:"interpretation,omitempty"`
	ComputedAt        core.Timestamp                   `json:"computed_at"`
}
