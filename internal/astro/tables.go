package astro

import (
	"astrogen/domain/chart"
)

// DignityTables holds the traditional rulership data the dignity scorer
// consults. Tables are loaded once at process start and injected into the
// scorer, never mutated; tests substitute synthetic tables.
type DignityTables struct {
	Domiciles    map[chart.Body][]chart.Sign
	Exaltations  map[chart.Body]chart.Sign
	Detriments   map[chart.Body][]chart.Sign
	Falls        map[chart.Body]chart.Sign
	Triplicities map[chart.Element]map[chart.Sect]chart.Body
}

// DefaultDignityTables returns the traditional tables for the seven
// classical bodies. Detriments and falls are derived as the opposite signs
// of domiciles and exaltations, which is what makes the domicile/detriment
// scores exact negatives under sign rotation.
func DefaultDignityTables() DignityTables {
	domiciles := map[chart.Body][]chart.Sign{
		chart.Sun:     {chart.Leo},
		chart.Moon:    {chart.Cancer},
		chart.Mercury: {chart.Gemini, chart.Virgo},
		chart.Venus:   {chart.Taurus, chart.Libra},
		chart.Mars:    {chart.Aries, chart.Scorpio},
		chart.Jupiter: {chart.Sagittarius, chart.Pisces},
		chart.Saturn:  {chart.Capricorn, chart.Aquarius},
	}
	exaltations := map[chart.Body]chart.Sign{
		chart.Sun:     chart.Aries,
		chart.Moon:    chart.Taurus,
		chart.Mercury: chart.Virgo,
		chart.Venus:   chart.Pisces,
		chart.Mars:    chart.Capricorn,
		chart.Jupiter: chart.Cancer,
		chart.Saturn:  chart.Libra,
	}

	detriments := make(map[chart.Body][]chart.Sign, len(domiciles))
	for body, signs := range domiciles {
		opposites := make([]chart.Sign, len(signs))
		for i, s := range signs {
			opposites[i] = s.Opposite()
		}
		detriments[body] = opposites
	}
	falls := make(map[chart.Body]chart.Sign, len(exaltations))
	for body, s := range exaltations {
		falls[body] = s.Opposite()
	}

	return DignityTables{
		Domiciles:   domiciles,
		Exaltations: exaltations,
		Detriments:  detriments,
		Falls:       falls,
		Triplicities: map[chart.Element]map[chart.Sect]chart.Body{
			chart.Fire:  {chart.DaySect: chart.Sun, chart.NightSect: chart.Jupiter},
			chart.Earth: {chart.DaySect: chart.Venus, chart.NightSect: chart.Moon},
			chart.Air:   {chart.DaySect: chart.Saturn, chart.NightSect: chart.Mercury},
			chart.Water: {chart.DaySect: chart.Mars, chart.NightSect: chart.Mars},
		},
	}
}

// AspectAngles maps each aspect type to its exact angle in degrees.
// Quintile and septile are harmonic (minor) aspects with tighter orbs.
var AspectAngles = map[chart.AspectType]float64{
	chart.Conjunction: 0,
	chart.Sextile:     60,
	chart.Square:      90,
	chart.Trine:       120,
	chart.Opposition:  180,
	chart.Quintile:    72,
	chart.Septile:     360.0 / 7.0,
}

// MajorAspects lists the classical aspects that use the full orb tolerance.
var MajorAspects = []chart.AspectType{
	chart.Conjunction, chart.Sextile, chart.Square, chart.Trine, chart.Opposition,
}

// MinorAspects use a tighter orb, scaled down from the configured tolerance.
var MinorAspects = []chart.AspectType{chart.Quintile, chart.Septile}

// minorOrbRatio scales the major orb tolerance down for minor aspects
// (3 degrees at the default 8 degree major orb).
const minorOrbRatio = 3.0 / 8.0
