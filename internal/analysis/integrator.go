package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"astrogen/domain/chart"
	"astrogen/domain/core"
	"astrogen/domain/correlation"
	"astrogen/domain/genetics"
	"astrogen/internal"
	"astrogen/internal/astro"
	apperrors "astrogen/internal/errors"
	genx "astrogen/internal/genetics"
	"astrogen/internal/methods"
	"astrogen/internal/validation"
	"astrogen/ports"
)

// Analyzer orchestrates the full pipeline for one subject: score the chart
// and variants, run each configured correlation method, validate every
// method's paired observations, correct across methods, and aggregate into
// a single comprehensive result.
type Analyzer struct {
	cfg        correlation.Config
	dignity    *astro.DignityScorer
	aspects    *astro.AspectScorer
	patterns   *astro.PatternDetector
	effects    *genx.EffectScorer
	polygenic  *genx.PolygenicScorer
	rulerships methods.RulershipTables
	validator  *validation.Validator
	logger     *internal.Logger
}

// NewAnalyzer wires the scorers over injected lookup tables. Tables are
// read-only after construction; the analyzer is safe for concurrent use
// across subjects.
func NewAnalyzer(cfg correlation.Config, dignityTables astro.DignityTables, refTables genx.ReferenceTables, rulerships methods.RulershipTables, streams ports.RNG, logger *internal.Logger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	validator := validation.NewValidator(cfg)
	if streams != nil {
		validator = validation.NewValidatorWithStreams(cfg, streams)
	}
	aspects := astro.NewAspectScorer(cfg.OrbTolerance)
	return &Analyzer{
		cfg:        cfg,
		dignity:    astro.NewDignityScorer(dignityTables),
		aspects:    aspects,
		patterns:   astro.NewPatternDetector(aspects),
		effects:    genx.NewEffectScorer(refTables, cfg.GenotypeMultipliers),
		polygenic:  genx.NewPolygenicScorer(refTables, cfg.GenotypeMultipliers),
		rulerships: rulerships,
		validator:  validator,
		logger:     logger,
	}, nil
}

// NewDefaultAnalyzer uses the built-in tables.
func NewDefaultAnalyzer(cfg correlation.Config, logger *internal.Logger) (*Analyzer, error) {
	return NewAnalyzer(cfg, astro.DefaultDignityTables(), genx.DefaultReferenceTables(), methods.DefaultRulershipTables(), nil, logger)
}

// RunMethod runs a single named method end to end. The adjusted p-value
// equals the raw p-value since there is nothing to correct across.
func (a *Analyzer) RunMethod(ctx context.Context, name correlation.MethodName, c *chart.Chart, variants []genetics.GeneticVariant) (correlation.CorrelationResult, error) {
	method := methods.ByName(name, a.rulerships)
	if method == nil {
		return correlation.CorrelationResult{}, core.NewInvalidInputError("method", fmt.Sprintf("unknown method %q", name))
	}

	inputs, warnings, err := a.buildInputs(c, variants)
	if err != nil {
		return correlation.CorrelationResult{}, err
	}

	obs, err := methods.Collect(method, inputs, a.cfg.MinObservations)
	if err != nil {
		return correlation.CorrelationResult{}, err
	}

	result, err := a.validator.Validate(ctx, obs)
	if err != nil {
		return result, err
	}
	if name == correlation.MethodPolygenic {
		result.Warnings = append(result.Warnings, warnings...)
	}
	return result, nil
}

// RunComprehensive runs every configured method, applies multiple-testing
// correction across the successful raw p-values, and aggregates. Local
// failures (InsufficientData, UndefinedCorrelation) skip the method;
// only an empty success set fails the run with NoValidMethods.
func (a *Analyzer) RunComprehensive(ctx context.Context, c *chart.Chart, variants []genetics.GeneticVariant) (*correlation.ComprehensiveResult, error) {
	inputs, polygenicWarnings, err := a.buildInputs(c, variants)
	if err != nil {
		return nil, err
	}

	enabled := a.cfg.EnabledMethods()
	succeeded := make([]correlation.CorrelationResult, 0, len(enabled))
	var skipped []correlation.MethodFailure

	for _, name := range enabled {
		method := methods.ByName(name, a.rulerships)
		if method == nil {
			return nil, core.NewInvalidInputError("methods", fmt.Sprintf("unknown method %q", name))
		}

		result, err := a.runOne(ctx, method, inputs)
		if err != nil {
			failure, fatal := classifyFailure(name, err)
			if fatal {
				return nil, err
			}
			a.logger.Warn("method %s skipped: %s", name, failure.Reason)
			skipped = append(skipped, failure)
			continue
		}
		if name == correlation.MethodPolygenic {
			result.Warnings = append(result.Warnings, polygenicWarnings...)
		}
		a.logger.Debug("method %s: %s r=%.3f p=%.4f n=%d", name, result.Kind, result.Coefficient, result.PValue, result.NObservations)
		succeeded = append(succeeded, result)
	}

	if len(succeeded) == 0 {
		return nil, fmt.Errorf("%w: %d configured, %d skipped", core.ErrNoValidMethods, len(enabled), len(skipped))
	}

	// Correction operates on the raw p-values of successful methods only;
	// skipped and undefined methods shrink the correction set.
	raw := make([]float64, len(succeeded))
	for i, r := range succeeded {
		raw[i] = r.PValue
	}
	adjusted := validation.AdjustPValues(raw, a.cfg.Correction)
	for i := range succeeded {
		succeeded[i].AdjustedPValue = adjusted[i]
	}

	perMethod := make(map[correlation.MethodName]correlation.CorrelationResult, len(succeeded))
	for _, r := range succeeded {
		perMethod[r.Method] = r
	}

	overallScore := a.weightedScore(succeeded)
	overallConfidence := confidence(succeeded)

	result := &correlation.ComprehensiveResult{
		RunID:             core.RunID(core.NewID()),
		PerMethod:         perMethod,
		Skipped:           skipped,
		OverallScore:      overallScore,
		OverallConfidence: overallConfidence,
		Interpretation:    interpret(overallScore, overallConfidence, succeeded),
		ComputedAt:        core.Timestamp(time.Now().UTC()),
	}
	a.logger.Info("comprehensive run %s: %d/%d methods, score=%.3f confidence=%.3f",
		result.RunID, len(succeeded), len(enabled), overallScore, overallConfidence)
	return result, nil
}

func (a *Analyzer) runOne(ctx context.Context, method methods.Method, inputs methods.Inputs) (correlation.CorrelationResult, error) {
	obs, err := methods.Collect(method, inputs, a.cfg.MinObservations)
	if err != nil {
		return correlation.CorrelationResult{}, err
	}
	return a.validator.Validate(ctx, obs)
}

// buildInputs scores the chart and variant set once per run; every method
// reads from the same snapshot. Degraded polygenic traits surface as
// warnings, not failures.
func (a *Analyzer) buildInputs(c *chart.Chart, variants []genetics.GeneticVariant) (methods.Inputs, []string, error) {
	if c == nil || len(c.Positions) == 0 {
		return methods.Inputs{}, nil, core.NewInvalidInputError("chart", "no positions")
	}

	dignities, err := a.dignity.AllDignities(c)
	if err != nil {
		return methods.Inputs{}, nil, err
	}
	pathways, err := a.effects.PathwayScores(variants)
	if err != nil {
		return methods.Inputs{}, nil, err
	}
	polygenic, err := a.polygenic.AllScores(variants)
	if err != nil {
		return methods.Inputs{}, nil, err
	}

	var warnings []string
	for trait, score := range polygenic {
		if score.Degraded {
			warnings = append(warnings, fmt.Sprintf("trait %s scored without reference distribution", trait))
		}
	}

	return methods.Inputs{
		Chart:     c,
		Dignities: dignities,
		Aspects:   a.aspects.Aspects(c),
		Patterns:  a.patterns.Detect(c),
		Pathways:  pathways,
		Polygenic: polygenic,
	}, warnings, nil
}

// weightedScore is the weighted mean of method coefficients, renormalized
// over the methods that actually succeeded.
func (a *Analyzer) weightedScore(results []correlation.CorrelationResult) float64 {
	sum := 0.0
	totalWeight := 0.0
	for _, r := range results {
		w := a.cfg.WeightFor(r.Method)
		sum += r.Coefficient * w
		totalWeight += w
	}
	if totalWeight == 0 {
		// Unweighted mean when no configured weights cover the survivors.
		for _, r := range results {
			sum += r.Coefficient
		}
		return sum / float64(len(results))
	}
	return sum / totalWeight
}

// confidence is monotone in both mean adjusted p-value and mean CI width:
// lower p and narrower intervals push it toward 1.
func confidence(results []correlation.CorrelationResult) float64 {
	meanAdjP := 0.0
	meanWidth := 0.0
	for _, r := range results {
		meanAdjP += r.AdjustedPValue
		meanWidth += r.CIWidth()
	}
	n := float64(len(results))
	meanAdjP /= n
	meanWidth /= n

	c := (1 - meanAdjP) * (1 - meanWidth/2)
	return math.Max(0, math.Min(1, c))
}

func classifyFailure(name correlation.MethodName, err error) (correlation.MethodFailure, bool) {
	failure := correlation.MethodFailure{Method: name, Reason: err.Error()}
	switch {
	case core.IsInsufficientData(err):
		failure.Code = apperrors.CodeInsufficientData
	case core.IsUndefinedCorrelation(err):
		failure.Code = apperrors.CodeUndefinedCorrelation
	case core.IsDegradedScore(err):
		failure.Code = apperrors.CodeDegradedScore
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return failure, true
	default:
		return failure, true
	}
	return failure, false
}

func interpret(score, conf float64, results []correlation.CorrelationResult) string {
	strength := "weak"
	if math.Abs(score) > 0.6 && conf > 0.7 {
		strength = "strong"
	} else if math.Abs(score) > 0.3 && conf > 0.5 {
		strength = "moderate"
	}
	direction := "positive"
	if score < 0 {
		direction = "negative"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s correlation between astrological configuration and genetic profile (score=%.3f, confidence=%.1f%%).",
		strings.ToUpper(strength[:1])+strength[1:], direction, score, conf*100)
	for _, r := range results {
		fmt.Fprintf(&b, " %s: r=%.3f (adj p=%.3f, n=%d).", r.Method, r.Coefficient, r.AdjustedPValue, r.NObservations)
	}
	return b.String()
}
