package methods

import (
	"fmt"
	"strings"

	"astrogen/domain/chart"
	"astrogen/domain/correlation"
	"astrogen/domain/genetics"
)

// AspectMethod pairs aspect-configuration strengths with the disruption of
// the pathways thematically tied to each configuration. Detected patterns
// (Grand Trine, T-Square) contribute one observation each; individual
// aspects between classical bodies contribute one observation per pair,
// tied to the union of both bodies' ruled pathways.
type AspectMethod struct {
	tables RulershipTables
}

func (m *AspectMethod) Name() correlation.MethodName { return correlation.MethodAspect }

func (m *AspectMethod) Observations(in Inputs) ([]correlation.PairedObservation, error) {
	obs := make([]correlation.PairedObservation, 0, len(in.Patterns)+len(in.Aspects))

	for _, pattern := range in.Patterns {
		disruption, ok := meanDisruption(in, m.tables.PatternPathways[pattern.Type])
		if !ok {
			continue
		}
		obs = append(obs, correlation.PairedObservation{
			Method:       m.Name(),
			AstroValue:   pattern.Strength,
			GeneticValue: disruption,
			UnitLabel:    patternLabel(pattern),
		})
	}

	for _, aspect := range in.Aspects {
		pathways := append([]genetics.Pathway{}, m.tables.PlanetPathways[aspect.BodyA]...)
		pathways = append(pathways, m.tables.PlanetPathways[aspect.BodyB]...)
		disruption, ok := meanDisruption(in, pathways)
		if !ok {
			continue
		}
		obs = append(obs, correlation.PairedObservation{
			Method:       m.Name(),
			AstroValue:   aspect.Strength,
			GeneticValue: disruption,
			UnitLabel:    fmt.Sprintf("%s-%s-%s", aspect.BodyA, aspect.Type, aspect.BodyB),
		})
	}

	sortObservations(obs)
	return obs, nil
}

func meanDisruption(in Inputs, pathways []genetics.Pathway) (float64, bool) {
	sum := 0.0
	count := 0
	seen := make(map[genetics.Pathway]struct{}, len(pathways))
	for _, pathway := range pathways {
		if _, dup := seen[pathway]; dup {
			continue
		}
		seen[pathway] = struct{}{}
		score, ok := in.Pathways[pathway]
		if !ok {
			continue
		}
		sum += score.Disruption
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func patternLabel(p chart.ChartPattern) string {
	names := make([]string, len(p.Members))
	for i, body := range p.Members {
		names[i] = string(body)
	}
	return string(p.Type) + ":" + strings.Join(names, "-")
}
