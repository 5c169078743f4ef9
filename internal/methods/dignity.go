package methods

import (
	"gonum.org/v1/gonum/stat/distuv"

	"astrogen/domain/chart"
	"astrogen/domain/correlation"
)

// DignityMethod pairs each classical body's dignity score with the
// confidence-weighted polygenic impact of the traits that body rules.
type DignityMethod struct {
	tables RulershipTables
}

func (m *DignityMethod) Name() correlation.MethodName { return correlation.MethodDignity }

func (m *DignityMethod) Observations(in Inputs) ([]correlation.PairedObservation, error) {
	obs := make([]correlation.PairedObservation, 0, len(chart.ClassicalBodies))
	for _, body := range chart.ClassicalBodies {
		dignity, ok := in.Dignities[body]
		if !ok {
			continue
		}
		impact, traits := m.geneticImpact(body, in)
		if traits == 0 {
			continue
		}
		obs = append(obs, correlation.PairedObservation{
			Method:       m.Name(),
			AstroValue:   dignity.Value,
			GeneticValue: impact,
			UnitLabel:    string(body),
		})
	}
	sortObservations(obs)
	return obs, nil
}

// geneticImpact averages the z-scaled percentile of each ruled trait,
// weighted by the trait's weight-table coverage.
func (m *DignityMethod) geneticImpact(body chart.Body, in Inputs) (float64, int) {
	sum := 0.0
	count := 0
	for _, trait := range m.tables.PlanetTraits[body] {
		prs, ok := in.Polygenic[trait]
		if !ok {
			continue
		}
		sum += percentileToZ(prs.Percentile) * prs.Confidence
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}

func percentileToZ(percentile float64) float64 {
	p := percentile / 100
	if p <= 0 {
		p = 1e-9
	}
	if p >= 1 {
		p = 1 - 1e-9
	}
	return distuv.Normal{Mu: 0, Sigma: 1}.Quantile(p)
}
