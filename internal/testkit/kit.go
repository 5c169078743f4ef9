package testkit

import (
	"math"
	"math/rand"

	"astrogen/domain/chart"
	"astrogen/domain/core"
	"astrogen/domain/genetics"
)

// SyntheticChart builds a deterministic day chart with known placements:
// Sun in Leo (domicile), Moon in Taurus (exaltation), Mars in Libra
// (detriment), and a Grand Trine across Sun, Jupiter, and Mercury.
func SyntheticChart() *chart.Chart {
	c := &chart.Chart{
		Positions: make(map[chart.Body]chart.ChartPosition),
		Ascendant: 15,
		Midheaven: 285,
		Sect:      chart.DaySect,
	}
	for i := 0; i < 12; i++ {
		c.Houses[i] = math.Mod(15+float64(i)*30, 360)
	}

	place := func(body chart.Body, longitude float64, house int) {
		c.Positions[body] = chart.ChartPosition{Body: body, Longitude: longitude, House: house}
	}

	place(chart.Sun, 125, 10)    // Leo 5, angular
	place(chart.Moon, 48, 7)     // Taurus 18, angular
	place(chart.Mercury, 245, 2) // Sagittarius 5
	place(chart.Venus, 95, 9)    // Cancer 5
	place(chart.Mars, 186, 12)   // Libra 6
	place(chart.Jupiter, 5, 4)   // Aries 5
	place(chart.Saturn, 310, 5)  // Aquarius 10

	return c
}

// SyntheticVariants returns a variant set covering the built-in annotation
// table with mixed genotypes.
func SyntheticVariants() []genetics.GeneticVariant {
	return []genetics.GeneticVariant{
		{Gene: "IL6", RSID: "rs1800795", Genotype: genetics.HomAlt, EffectSize: 0.9},
		{Gene: "TNF", RSID: "rs361525", Genotype: genetics.Het, EffectSize: 0.8},
		{Gene: "IL1B", RSID: "rs1143634", Genotype: genetics.Het, EffectSize: 0.7},
		{Gene: "COMT", RSID: "rs4680", Genotype: genetics.HomAlt, EffectSize: 0.8},
		{Gene: "BDNF", RSID: "rs6265", Genotype: genetics.Het, EffectSize: 1.0},
		{Gene: "DRD2", RSID: "rs1800497", Genotype: genetics.HomRef, EffectSize: 0.9},
		{Gene: "OXTR", RSID: "rs53576", Genotype: genetics.HomAlt, EffectSize: 0.8},
		{Gene: "APOE", RSID: "rs429358", Genotype: genetics.Het, EffectSize: 2.5},
		{Gene: "APOE", RSID: "rs7412", Genotype: genetics.HomRef, EffectSize: 1.8},
		{Gene: "CDKN2A", RSID: "rs1333049", Genotype: genetics.Het, EffectSize: 1.1},
		{Gene: "MTHFR", RSID: "rs1801133", Genotype: genetics.HomAlt, EffectSize: 1.3},
		{Gene: "PPARG", RSID: "rs1801282", Genotype: genetics.Het, EffectSize: 1.2},
		{Gene: "TCF7L2", RSID: "rs7903146", Genotype: genetics.Het, EffectSize: 1.5},
		{Gene: "PON1", RSID: "rs662", Genotype: genetics.Het, EffectSize: 0.6},
		{Gene: "ACTN3", RSID: "rs1815739", Genotype: genetics.HomAlt, EffectSize: 1.2},
		{Gene: "HTR1A", RSID: "rs6295", Genotype: genetics.Het, EffectSize: 0.7},
		{Gene: "CACNA1C", RSID: "rs1006737", Genotype: genetics.Het, EffectSize: 1.1},
	}
}

// DemoSampleID is the sample the CLI demo and tests register in memstore.
const DemoSampleID = core.SampleID("demo-subject-001")

// CorrelatedVectors draws n pairs with population correlation rho using a
// bivariate normal construction. Useful for CI containment and power checks.
func CorrelatedVectors(n int, rho float64, seed int64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	k := math.Sqrt(1 - rho*rho)
	for i := 0; i < n; i++ {
		z1 := rng.NormFloat64()
		z2 := rng.NormFloat64()
		x[i] = z1
		y[i] = rho*z1 + k*z2
	}
	return x, y
}
