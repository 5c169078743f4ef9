package genetics

import (
	"math"
	"sort"

	"astrogen/domain/core"
	"astrogen/domain/genetics"
)

// EffectScorer converts variant calls into effect-size-weighted numeric
// contributions and aggregates them into pathway disruption scores.
type EffectScorer struct {
	tables      ReferenceTables
	multipliers map[genetics.Genotype]float64
}

// NewEffectScorer creates a scorer over the given reference tables and
// genotype multipliers (hom_ref=0, het=1, hom_alt=2 by default).
func NewEffectScorer(tables ReferenceTables, multipliers map[genetics.Genotype]float64) *EffectScorer {
	return &EffectScorer{tables: tables, multipliers: multipliers}
}

// Contribution computes a single variant's weighted contribution:
// effectSize x genotype multiplier.
func (s *EffectScorer) Contribution(v genetics.GeneticVariant) (float64, error) {
	if !v.Genotype.IsValid() {
		return 0, core.NewInvalidInputError("genotype", string(v.Genotype))
	}
	if v.EffectSize <= 0 {
		return 0, core.NewInvalidInputError("effect_size", "must be positive")
	}
	return v.EffectSize * s.multipliers[v.Genotype], nil
}

// PathwayScores aggregates contributions per pathway and scales each sum
// to [0,1] through the saturation function 1 - exp(-sum/normalizer), so
// additional variants yield diminishing returns and the score stays
// bounded regardless of variant count.
func (s *EffectScorer) PathwayScores(variants []genetics.GeneticVariant) (map[genetics.Pathway]genetics.PathwayScore, error) {
	sums := make(map[genetics.Pathway]float64)
	counts := make(map[genetics.Pathway]int)

	for _, v := range variants {
		contribution, err := s.Contribution(v)
		if err != nil {
			return nil, err
		}
		ann, _ := s.tables.Annotation(v)
		if ann.Pathway == "" {
			continue // unmapped variants do not belong to any pathway
		}
		sums[ann.Pathway] += contribution
		counts[ann.Pathway]++
	}

	normalizer := s.tables.PathwayNormalizer
	if normalizer <= 0 {
		normalizer = 1
	}

	scores := make(map[genetics.Pathway]genetics.PathwayScore, len(sums))
	for pathway, sum := range sums {
		scores[pathway] = genetics.PathwayScore{
			Pathway:    pathway,
			Disruption: 1 - math.Exp(-sum/normalizer),
			Variants:   counts[pathway],
		}
	}
	return scores, nil
}

// GeneContributions groups per-variant contributions by gene.
func (s *EffectScorer) GeneContributions(variants []genetics.GeneticVariant) (map[string]float64, error) {
	byGene := make(map[string]float64)
	for _, v := range variants {
		contribution, err := s.Contribution(v)
		if err != nil {
			return nil, err
		}
		ann, _ := s.tables.Annotation(v)
		gene := ann.Gene
		if gene == "" {
			gene = v.Gene
		}
		byGene[gene] += contribution
	}
	return byGene, nil
}

// RankedPathways returns pathway scores sorted by disruption, highest first.
func RankedPathways(scores map[genetics.Pathway]genetics.PathwayScore) []genetics.PathwayScore {
	ranked := make([]genetics.PathwayScore, 0, len(scores))
	for _, score := range scores {
		ranked = append(ranked, score)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Disruption != ranked[j].Disruption {
			return ranked[i].Disruption > ranked[j].Disruption
		}
		return ranked[i].Pathway < ranked[j].Pathway
	})
	return ranked
}
