package genetics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"astrogen/domain/core"
	"astrogen/domain/genetics"
)

// PolygenicScorer computes trait-level polygenic risk scores against
// configured reference population distributions.
type PolygenicScorer struct {
	tables      ReferenceTables
	multipliers map[genetics.Genotype]float64
	stdNormal   distuv.Normal
}

// NewPolygenicScorer creates a scorer over the given reference tables.
func NewPolygenicScorer(tables ReferenceTables, multipliers map[genetics.Genotype]float64) *PolygenicScorer {
	return &PolygenicScorer{
		tables:      tables,
		multipliers: multipliers,
		stdNormal:   distuv.Normal{Mu: 0, Sigma: 1},
	}
}

// Score computes the polygenic score for one trait. The weighted allele
// sum is normalized by sqrt(variant count) and compared against the
// trait's reference distribution to yield a percentile. Without a
// configured reference the raw weighted sum is returned with the result
// flagged Degraded and core.ErrDegradedScore as the error; the score is
// still usable.
func (s *PolygenicScorer) Score(trait string, variants []genetics.GeneticVariant) (genetics.PolygenicScore, error) {
	weights, ok := s.tables.PRSWeights[trait]
	if !ok {
		return genetics.PolygenicScore{}, core.NewInvalidInputError("trait", trait)
	}

	byRSID := make(map[string]genetics.GeneticVariant, len(variants))
	for _, v := range variants {
		byRSID[v.RSID] = v
	}

	sum := 0.0
	matched := 0
	for rsid, weight := range weights {
		v, ok := byRSID[rsid]
		if !ok {
			continue
		}
		if !v.Genotype.IsValid() {
			return genetics.PolygenicScore{}, core.NewInvalidInputError("genotype", string(v.Genotype))
		}
		sum += weight * s.multipliers[v.Genotype]
		matched++
	}

	score := sum
	if matched > 0 {
		score = sum / math.Sqrt(float64(matched))
	}

	result := genetics.PolygenicScore{
		Trait:      trait,
		Score:      score,
		Variants:   matched,
		Confidence: float64(matched) / float64(len(weights)),
	}

	ref, ok := s.tables.References[trait]
	if !ok || ref.StdDev <= 0 {
		// No reference distribution: raw weighted sum with a neutral
		// percentile, flagged rather than failed.
		result.Percentile = 50
		result.Degraded = true
		return result, core.ErrDegradedScore
	}

	z := (score - ref.Mean) / ref.StdDev
	result.Percentile = clampPercentile(s.stdNormal.CDF(z) * 100)
	return result, nil
}

// AllScores computes polygenic scores for every configured trait.
// Degraded scores are included; only invalid input aborts.
func (s *PolygenicScorer) AllScores(variants []genetics.GeneticVariant) (map[string]genetics.PolygenicScore, error) {
	scores := make(map[string]genetics.PolygenicScore, len(s.tables.PRSWeights))
	for trait := range s.tables.PRSWeights {
		score, err := s.Score(trait, variants)
		if err != nil && !core.IsDegradedScore(err) {
			return nil, err
		}
		scores[trait] = score
	}
	return scores, nil
}

// PercentileToZ converts a population percentile back to a z-score.
func (s *PolygenicScorer) PercentileToZ(percentile float64) float64 {
	p := percentile / 100
	if p <= 0 {
		p = 1e-9
	}
	if p >= 1 {
		p = 1 - 1e-9
	}
	return s.stdNormal.Quantile(p)
}

// TopRiskTraits returns the n traits with the highest percentiles.
func TopRiskTraits(scores map[string]genetics.PolygenicScore, n int) []genetics.PolygenicScore {
	ranked := make([]genetics.PolygenicScore, 0, len(scores))
	for _, score := range scores {
		ranked = append(ranked, score)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Percentile != ranked[j].Percentile {
			return ranked[i].Percentile > ranked[j].Percentile
		}
		return ranked[i].Trait < ranked[j].Trait
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func clampPercentile(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}
