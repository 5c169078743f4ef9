package correlation

import (
	"fmt"

	"astrogen/domain/core"
	"astrogen/domain/genetics"
)

// CorrectionMethod selects the multiple-testing correction applied across methods.
type CorrectionMethod string

const (
	CorrectionFDR        CorrectionMethod = "fdr" // Benjamini-Hochberg
	CorrectionBonferroni CorrectionMethod = "bonferroni"
	CorrectionNone       CorrectionMethod = "none"
)

// Config is the full analysis option set.
type Config struct {
	BootstrapIterations   int                          `json:"bootstrap_iterations"`   // >= 100
	PermutationIterations int                          `json:"permutation_iterations"` // >= 100
	Correction            CorrectionMethod             `json:"correction"`
	OrbTolerance          float64                      `json:"orb_tolerance"` // degrees, major aspects
	GenotypeMultipliers   map[genetics.Genotype]float64 `json:"genotype_multipliers"`
	MethodWeights         map[MethodName]float64       `json:"method_weights"`
	Methods               []MethodName                 `json:"methods"` // subset to run; empty means all
	MinObservations       int                          `json:"min_observations"` // >= 3
	Seed                  int64                        `json:"seed"`
	Workers               int                          `json:"workers"` // resampling pool size; 0 means GOMAXPROCS
}

// DefaultConfig returns the documented defaults. The bootstrap default is
// 10,000; FastConfig carries the reduced demo figure.
func DefaultConfig() Config {
	return Config{
		BootstrapIterations:   10000,
		PermutationIterations: 1000,
		Correction:            CorrectionFDR,
		OrbTolerance:          8.0,
		GenotypeMultipliers: map[genetics.Genotype]float64{
			genetics.HomRef: 0,
			genetics.Het:    1,
			genetics.HomAlt: 2,
		},
		MethodWeights: map[MethodName]float64{
			MethodPathway:   0.35,
			MethodDignity:   0.30,
			MethodPolygenic: 0.20,
			MethodAspect:    0.15,
		},
		MinObservations: 3,
		Seed:            1,
	}
}

// FastConfig returns the reduced-iteration preset for demos and tests.
func FastConfig() Config {
	cfg := DefaultConfig()
	cfg.BootstrapIterations = 1000
	cfg.PermutationIterations = 1000
	return cfg
}

// Validate checks the option set against the documented minimums.
func (c Config) Validate() error {
	if c.BootstrapIterations < 100 {
		return core.NewInvalidInputError("bootstrap_iterations", fmt.Sprintf("must be >= 100, got %d", c.BootstrapIterations))
	}
	if c.PermutationIterations < 100 {
		return core.NewInvalidInputError("permutation_iterations", fmt.Sprintf("must be >= 100, got %d", c.PermutationIterations))
	}
	if c.MinObservations < 3 {
		return core.NewInvalidInputError("min_observations", fmt.Sprintf("must be >= 3, got %d", c.MinObservations))
	}
	switch c.Correction {
	case CorrectionFDR, CorrectionBonferroni, CorrectionNone:
	default:
		return core.NewInvalidInputError("correction", fmt.Sprintf("unknown method %q", c.Correction))
	}
	if c.OrbTolerance <= 0 || c.OrbTolerance > 15 {
		return core.NewInvalidInputError("orb_tolerance", fmt.Sprintf("must be in (0,15], got %g", c.OrbTolerance))
	}
	for _, m := range c.Methods {
		if !m.IsValid() {
			return core.NewInvalidInputError("methods", fmt.Sprintf("unknown method %q", m))
		}
	}
	return nil
}

// EnabledMethods resolves the configured method subset, defaulting to all.
func (c Config) EnabledMethods() []MethodName {
	if len(c.Methods) == 0 {
		return AllMethods
	}
	return c.Methods
}

// WeightFor returns the aggregation weight for a method, defaulting to 0.
func (c Config) WeightFor(m MethodName) float64 {
	return c.MethodWeights[m]
}
