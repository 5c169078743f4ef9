package validation

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"

	"astrogen/domain/core"
	"astrogen/domain/correlation"
	"astrogen/ports"
)

// Validator turns a method's paired observations into a validated
// correlation result: coefficient, bootstrap CI, and permutation p-value.
// Multiple-testing correction across methods is applied afterwards by the
// integrator, once all raw p-values are known.
type Validator struct {
	cfg     correlation.Config
	streams ports.RNG
}

func NewValidator(cfg correlation.Config) *Validator {
	return &Validator{cfg: cfg}
}

// NewValidatorWithStreams uses the given RNG port for per-method seed
// derivation instead of the built-in hash scheme.
func NewValidatorWithStreams(cfg correlation.Config, streams ports.RNG) *Validator {
	return &Validator{cfg: cfg, streams: streams}
}

// Validate computes the full statistical summary for one method.
// Failure modes: fewer than MinObservations pairs reports InsufficientData;
// a zero-variance vector reports UndefinedCorrelation with the coefficient
// as NaN, which the caller excludes from aggregation and from the
// correction set.
func (v *Validator) Validate(ctx context.Context, obs []correlation.PairedObservation) (correlation.CorrelationResult, error) {
	if len(obs) < v.cfg.MinObservations {
		var method correlation.MethodName
		if len(obs) > 0 {
			method = obs[0].Method
		}
		return correlation.CorrelationResult{}, core.NewInsufficientDataError(string(method), len(obs), v.cfg.MinObservations)
	}

	method := obs[0].Method
	x := make([]float64, len(obs))
	y := make([]float64, len(obs))
	for i, o := range obs {
		x[i] = o.AstroValue
		y[i] = o.GeneticValue
	}

	result := correlation.CorrelationResult{
		Method:        method,
		NObservations: len(obs),
	}

	kind, coef := v.chooseCoefficient(x, y, &result)
	observed, err := coef(x, y)
	if err != nil {
		if core.IsUndefinedCorrelation(err) {
			result.Coefficient = math.NaN()
			result.Kind = kind
			return result, err
		}
		return correlation.CorrelationResult{}, err
	}
	result.Kind = kind
	result.Coefficient = observed

	seed := v.streamSeed(method)
	low, high, err := BootstrapCI(ctx, x, y, v.cfg.BootstrapIterations, v.cfg.Workers, seed, coef)
	if err != nil {
		return correlation.CorrelationResult{}, err
	}
	result.CILow = low
	result.CIHigh = high

	p, err := PermutationPValue(ctx, x, y, observed, v.cfg.PermutationIterations, v.cfg.Workers, seed+1, coef)
	if err != nil {
		return correlation.CorrelationResult{}, err
	}
	result.PValue = p
	result.AdjustedPValue = p

	return result, nil
}

// chooseCoefficient picks Spearman as primary when either vector fails the
// normality check, Pearson otherwise.
func (v *Validator) chooseCoefficient(x, y []float64, result *correlation.CorrelationResult) (correlation.CoefficientKind, coefficientFn) {
	xNormal, xp := TestNormality(x)
	yNormal, yp := TestNormality(y)
	if xNormal && yNormal {
		return correlation.Pearson, PearsonCoefficient
	}
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("normality rejected (p_x=%.3f, p_y=%.3f), using rank correlation", xp, yp))
	return correlation.Spearman, SpearmanCoefficient
}

// streamSeed derives a per-method seed so each method draws from its own
// reproducible stream.
func (v *Validator) streamSeed(method correlation.MethodName) int64 {
	if v.streams != nil {
		return v.streams.Stream(string(method), v.cfg.Seed).Int63()
	}
	h := fnv.New64a()
	h.Write([]byte(method))
	return v.cfg.Seed + int64(h.Sum64()&0x7fffffff)
}
