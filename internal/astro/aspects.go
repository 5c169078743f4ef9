package astro

import (
	"math"
	"sort"

	"astrogen/domain/chart"
)

// AspectScorer detects aspects and harmonic resonances between chart
// positions. Strength is 1 - orb/maxOrb, clipped to [0,1]: exactly 1 at a
// perfect aspect, exactly 0 at the orb boundary, strictly decreasing
// in between.
type AspectScorer struct {
	majorOrb float64
	minorOrb float64
}

// NewAspectScorer creates a scorer with the given major-aspect orb
// tolerance in degrees. Minor aspects use a proportionally tighter orb.
func NewAspectScorer(orbTolerance float64) *AspectScorer {
	return &AspectScorer{
		majorOrb: orbTolerance,
		minorOrb: orbTolerance * minorOrbRatio,
	}
}

// Separation reduces the angular distance between two longitudes to [0,180].
func Separation(lonA, lonB float64) float64 {
	diff := math.Abs(math.Mod(lonA, 360) - math.Mod(lonB, 360))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Strength computes the orb-decay strength for a given deviation and
// maximum orb.
func Strength(orb, maxOrb float64) float64 {
	if maxOrb <= 0 {
		return 0
	}
	strength := 1 - orb/maxOrb
	if strength < 0 {
		return 0
	}
	if strength > 1 {
		return 1
	}
	return strength
}

// Match tests a single separation against the aspect table and returns
// the best-fitting aspect, if any matches within orb.
func (s *AspectScorer) Match(separation float64) (chart.AspectType, float64, float64, bool) {
	bestRatio := math.Inf(1)
	var bestType chart.AspectType
	var bestOrb, bestMax float64

	check := func(types []chart.AspectType, maxOrb float64) {
		for _, at := range types {
			orb := math.Abs(separation - AspectAngles[at])
			if orb > maxOrb {
				continue
			}
			// Normalized orb picks the tightest match when windows overlap.
			if ratio := orb / maxOrb; ratio < bestRatio {
				bestRatio = ratio
				bestType = at
				bestOrb = orb
				bestMax = maxOrb
			}
		}
	}
	check(MajorAspects, s.majorOrb)
	check(MinorAspects, s.minorOrb)

	if math.IsInf(bestRatio, 1) {
		return "", 0, 0, false
	}
	return bestType, bestOrb, bestMax, true
}

// Aspects computes all aspects between unordered body pairs in the chart,
// in canonical body order.
func (s *AspectScorer) Aspects(c *chart.Chart) []chart.AspectRecord {
	bodies := presentBodies(c)
	var records []chart.AspectRecord
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			posA := c.Positions[bodies[i]]
			posB := c.Positions[bodies[j]]
			sep := Separation(posA.Longitude, posB.Longitude)

			aspectType, orb, maxOrb, ok := s.Match(sep)
			if !ok {
				continue
			}
			records = append(records, chart.AspectRecord{
				BodyA:    bodies[i],
				BodyB:    bodies[j],
				Angle:    sep,
				Type:     aspectType,
				Orb:      orb,
				Strength: Strength(orb, maxOrb),
			})
		}
	}
	return records
}

// HarmonicRecord is a resonance of a body pair with an integer harmonic
// division of the circle.
type HarmonicRecord struct {
	BodyA     chart.Body `json:"body_a"`
	BodyB     chart.Body `json:"body_b"`
	Harmonic  int        `json:"harmonic"`
	Angle     float64    `json:"angle"`
	Deviation float64    `json:"deviation"`
	Strength  float64    `json:"strength"`
}

// HarmonicResonance measures how closely a separation sits to any multiple
// of 360/n, with the same orb-decay formula as classical aspects.
func (s *AspectScorer) HarmonicResonance(separation float64, harmonic int) (deviation, strength float64) {
	if harmonic < 1 {
		return 0, 0
	}
	step := 360.0 / float64(harmonic)
	nearest := math.Round(separation/step) * step
	deviation = math.Abs(separation - nearest)
	return deviation, Strength(deviation, s.minorOrb)
}

// Harmonics computes resonance records for every body pair across the
// requested harmonics, dropping zero-strength pairs.
func (s *AspectScorer) Harmonics(c *chart.Chart, harmonics []int) []HarmonicRecord {
	bodies := presentBodies(c)
	var records []HarmonicRecord
	for _, h := range harmonics {
		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				sep := Separation(c.Positions[bodies[i]].Longitude, c.Positions[bodies[j]].Longitude)
				dev, strength := s.HarmonicResonance(sep, h)
				if strength <= 0 {
					continue
				}
				records = append(records, HarmonicRecord{
					BodyA:     bodies[i],
					BodyB:     bodies[j],
					Harmonic:  h,
					Angle:     sep,
					Deviation: dev,
					Strength:  strength,
				})
			}
		}
	}
	return records
}

// BodyAspectStrength sums the strengths of all aspects involving a body.
func BodyAspectStrength(aspects []chart.AspectRecord, body chart.Body) float64 {
	total := 0.0
	for _, a := range aspects {
		if a.BodyA == body || a.BodyB == body {
			total += a.Strength
		}
	}
	return total
}

func presentBodies(c *chart.Chart) []chart.Body {
	bodies := make([]chart.Body, 0, len(c.Positions))
	for _, b := range chart.AllBodies {
		if _, ok := c.Positions[b]; ok {
			bodies = append(bodies, b)
		}
	}
	// Positions outside the canonical list are ignored rather than sorted in.
	sort.Slice(bodies, func(i, j int) bool { return indexOfBody(bodies[i]) < indexOfBody(bodies[j]) })
	return bodies
}

func indexOfBody(b chart.Body) int {
	for i, known := range chart.AllBodies {
		if known == b {
			return i
		}
	}
	return len(chart.AllBodies)
}
