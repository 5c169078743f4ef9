package methods

import (
	"astrogen/domain/correlation"
)

// PolygenicMethod pairs each trait's ruling-planet configuration strength
// with the trait's polygenic percentile.
type PolygenicMethod struct {
	tables RulershipTables
}

func (m *PolygenicMethod) Name() correlation.MethodName { return correlation.MethodPolygenic }

func (m *PolygenicMethod) Observations(in Inputs) ([]correlation.PairedObservation, error) {
	obs := make([]correlation.PairedObservation, 0, len(m.tables.TraitPlanets))
	for trait, body := range m.tables.TraitPlanets {
		prs, ok := in.Polygenic[trait]
		if !ok {
			continue
		}
		strength, ok := bodyStrength(body, in)
		if !ok {
			continue
		}
		obs = append(obs, correlation.PairedObservation{
			Method:       m.Name(),
			AstroValue:   strength,
			GeneticValue: prs.Percentile,
			UnitLabel:    trait,
		})
	}
	sortObservations(obs)
	return obs, nil
}
