package astro

import (
	"astrogen/domain/chart"
)

// PatternDetector finds fixed multi-body configurations by searching all
// triplets of bodies against each pattern's defining angle set.
type PatternDetector struct {
	scorer *AspectScorer
}

// NewPatternDetector creates a detector sharing the scorer's orb tolerance.
func NewPatternDetector(scorer *AspectScorer) *PatternDetector {
	return &PatternDetector{scorer: scorer}
}

// Detect searches every triplet of chart bodies for Grand Trine and
// T-Square configurations. Composite strength is the mean of the member
// aspect strengths.
func (d *PatternDetector) Detect(c *chart.Chart) []chart.ChartPattern {
	bodies := presentBodies(c)
	var patterns []chart.ChartPattern

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			for k := j + 1; k < len(bodies); k++ {
				triplet := [3]chart.Body{bodies[i], bodies[j], bodies[k]}
				if p, ok := d.matchGrandTrine(c, triplet); ok {
					patterns = append(patterns, p)
				}
				if p, ok := d.matchTSquare(c, triplet); ok {
					patterns = append(patterns, p)
				}
			}
		}
	}
	return patterns
}

// matchGrandTrine requires all three pairs to form trines within orb.
func (d *PatternDetector) matchGrandTrine(c *chart.Chart, triplet [3]chart.Body) (chart.ChartPattern, bool) {
	var aspects []chart.AspectRecord
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 3; b++ {
			rec, ok := d.pairAspect(c, triplet[a], triplet[b], chart.Trine)
			if !ok {
				return chart.ChartPattern{}, false
			}
			aspects = append(aspects, rec)
		}
	}
	return chart.ChartPattern{
		Type:     chart.GrandTrine,
		Members:  triplet[:],
		Aspects:  aspects,
		Strength: meanStrength(aspects),
	}, true
}

// matchTSquare requires one opposition pair with both members square to
// the third body (the apex).
func (d *PatternDetector) matchTSquare(c *chart.Chart, triplet [3]chart.Body) (chart.ChartPattern, bool) {
	// Try each member as the apex.
	for apex := 0; apex < 3; apex++ {
		a := (apex + 1) % 3
		b := (apex + 2) % 3

		opp, ok := d.pairAspect(c, triplet[a], triplet[b], chart.Opposition)
		if !ok {
			continue
		}
		sqA, ok := d.pairAspect(c, triplet[apex], triplet[a], chart.Square)
		if !ok {
			continue
		}
		sqB, ok := d.pairAspect(c, triplet[apex], triplet[b], chart.Square)
		if !ok {
			continue
		}

		aspects := []chart.AspectRecord{opp, sqA, sqB}
		return chart.ChartPattern{
			Type:     chart.TSquare,
			Members:  []chart.Body{triplet[apex], triplet[a], triplet[b]},
			Aspects:  aspects,
			Strength: meanStrength(aspects),
		}, true
	}
	return chart.ChartPattern{}, false
}

func (d *PatternDetector) pairAspect(c *chart.Chart, bodyA, bodyB chart.Body, want chart.AspectType) (chart.AspectRecord, bool) {
	sep := Separation(c.Positions[bodyA].Longitude, c.Positions[bodyB].Longitude)
	aspectType, orb, maxOrb, ok := d.scorer.Match(sep)
	if !ok || aspectType != want {
		return chart.AspectRecord{}, false
	}
	return chart.AspectRecord{
		BodyA:    bodyA,
		BodyB:    bodyB,
		Angle:    sep,
		Type:     aspectType,
		Orb:      orb,
		Strength: Strength(orb, maxOrb),
	}, true
}

func meanStrength(aspects []chart.AspectRecord) float64 {
	if len(aspects) == 0 {
		return 0
	}
	total := 0.0
	for _, a := range aspects {
		total += a.Strength
	}
	return total / float64(len(aspects))
}
