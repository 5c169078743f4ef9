package methods

import (
	"sort"

	"astrogen/domain/chart"
	"astrogen/domain/genetics"
)

// RulershipTables map traditional planetary rulerships onto genetic traits
// and biological pathways. The mappings are domain content, injected as
// read-only data so tests can substitute synthetic tables.
type RulershipTables struct {
	// PlanetTraits associates each classical body with the polygenic traits
	// it traditionally rules.
	PlanetTraits map[chart.Body][]string

	// PlanetPathways associates each classical body with its ruled pathways.
	PlanetPathways map[chart.Body][]genetics.Pathway

	// TraitPlanets is the primary ruling body per polygenic trait.
	TraitPlanets map[string]chart.Body

	// PatternPathways maps a detected configuration type to the pathways
	// thematically tied to it.
	PatternPathways map[chart.PatternType][]genetics.Pathway
}

// DefaultRulershipTables returns the traditional rulership assignments.
func DefaultRulershipTables() RulershipTables {
	return RulershipTables{
		PlanetTraits: map[chart.Body][]string{
			chart.Sun:     {"cardiovascular_disease", "vitality"},
			chart.Moon:    {"emotional_regulation", "circadian"},
			chart.Mercury: {"cognitive_ability", "nervous_system"},
			chart.Venus:   {"metabolic_efficiency", "hormonal"},
			chart.Mars:    {"inflammatory_response", "athletic_performance"},
			chart.Jupiter: {"growth", "liver_function"},
			chart.Saturn:  {"structural", "aging"},
		},
		PlanetPathways: map[chart.Body][]genetics.Pathway{
			chart.Sun:     {genetics.Cardiovascular},
			chart.Moon:    {genetics.Emotional},
			chart.Mercury: {genetics.Neurotransmitter},
			chart.Venus:   {genetics.Metabolic},
			chart.Mars:    {genetics.Inflammation, genetics.Athletic},
			chart.Jupiter: {genetics.Metabolic, genetics.Detoxification},
			chart.Saturn:  {genetics.Detoxification},
		},
		TraitPlanets: map[string]chart.Body{
			"cardiovascular_disease": chart.Sun,
			"cognitive_ability":      chart.Mercury,
			"inflammatory_response":  chart.Mars,
			"metabolic_efficiency":   chart.Venus,
			"athletic_performance":   chart.Mars,
		},
		PatternPathways: map[chart.PatternType][]genetics.Pathway{
			chart.GrandTrine: {genetics.Emotional, genetics.Metabolic},
			chart.TSquare:    {genetics.Inflammation, genetics.Cardiovascular},
		},
	}
}

// PathwayRulers inverts PlanetPathways: pathway to its ruling bodies,
// in a stable order.
func (t RulershipTables) PathwayRulers() map[genetics.Pathway][]chart.Body {
	rulers := make(map[genetics.Pathway][]chart.Body)
	for _, body := range chart.ClassicalBodies {
		for _, pathway := range t.PlanetPathways[body] {
			rulers[pathway] = append(rulers[pathway], body)
		}
	}
	for pathway := range rulers {
		sort.Slice(rulers[pathway], func(i, j int) bool {
			return rulers[pathway][i] < rulers[pathway][j]
		})
	}
	return rulers
}
