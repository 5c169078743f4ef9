package methods

import (
	"astrogen/domain/chart"
	"astrogen/domain/correlation"
	"astrogen/internal/astro"
)

// PathwayMethod pairs each pathway's aggregate planetary rulership strength
// with that pathway's disruption score. Rulership strength combines dignity,
// house placement, and aspect involvement for every ruling body.
type PathwayMethod struct {
	tables RulershipTables
}

func (m *PathwayMethod) Name() correlation.MethodName { return correlation.MethodPathway }

func (m *PathwayMethod) Observations(in Inputs) ([]correlation.PairedObservation, error) {
	rulers := m.tables.PathwayRulers()
	obs := make([]correlation.PairedObservation, 0, len(in.Pathways))
	for pathway, score := range in.Pathways {
		bodies := rulers[pathway]
		if len(bodies) == 0 {
			continue
		}
		strength := 0.0
		scored := 0
		for _, body := range bodies {
			s, ok := bodyStrength(body, in)
			if !ok {
				continue
			}
			strength += s
			scored++
		}
		if scored == 0 {
			continue
		}
		obs = append(obs, correlation.PairedObservation{
			Method:       m.Name(),
			AstroValue:   strength,
			GeneticValue: score.Disruption,
			UnitLabel:    string(pathway),
		})
	}
	sortObservations(obs)
	return obs, nil
}

// bodyStrength is dignity plus house strength plus aspect involvement.
func bodyStrength(body chart.Body, in Inputs) (float64, bool) {
	dignity, ok := in.Dignities[body]
	if !ok {
		return 0, false
	}
	pos, ok := in.Chart.Position(body)
	if !ok {
		return 0, false
	}
	return dignity.Value + houseStrength(pos.House) + astro.BodyAspectStrength(in.Aspects, body), true
}

// houseStrength grades placement by house class: angular houses (1,4,7,10)
// score 2, succedent 1, cadent 0.
func houseStrength(house int) float64 {
	if house < 1 || house > 12 {
		return 0
	}
	switch (house - 1) % 3 {
	case 0:
		return 2
	case 1:
		return 1
	default:
		return 0
	}
}
