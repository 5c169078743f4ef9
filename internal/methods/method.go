package methods

import (
	"math"
	"sort"

	"astrogen/domain/chart"
	"astrogen/domain/core"
	"astrogen/domain/correlation"
	"astrogen/domain/genetics"
)

// Inputs carries the precomputed chart and genetic scores shared by every
// method. The integrator builds one Inputs per analysis run; methods only
// read from it.
type Inputs struct {
	Chart     *chart.Chart
	Dignities map[chart.Body]chart.DignityScore
	Aspects   []chart.AspectRecord
	Patterns  []chart.ChartPattern
	Pathways  map[genetics.Pathway]genetics.PathwayScore
	Polygenic map[string]genetics.PolygenicScore
}

// Method maps precomputed scores into paired observations for one
// correlation strategy. Implementations are pure over their inputs.
type Method interface {
	Name() correlation.MethodName
	Observations(in Inputs) ([]correlation.PairedObservation, error)
}

// ByName is the factory over the closed method set.
func ByName(name correlation.MethodName, tables RulershipTables) Method {
	switch name {
	case correlation.MethodDignity:
		return &DignityMethod{tables: tables}
	case correlation.MethodPathway:
		return &PathwayMethod{tables: tables}
	case correlation.MethodPolygenic:
		return &PolygenicMethod{tables: tables}
	case correlation.MethodAspect:
		return &AspectMethod{tables: tables}
	default:
		return nil
	}
}

// Collect runs a method and enforces the observation floor. Below min the
// method reports InsufficientData and is excluded from aggregation rather
// than producing a spurious coefficient.
func Collect(m Method, in Inputs, min int) ([]correlation.PairedObservation, error) {
	obs, err := m.Observations(in)
	if err != nil {
		return nil, err
	}
	if len(obs) < min {
		return nil, core.NewInsufficientDataError(string(m.Name()), len(obs), min)
	}
	if err := checkUnitLabels(obs); err != nil {
		return nil, err
	}
	return obs, nil
}

// HarmonyScore measures agreement between a dignity-scale astrological
// value and a z-scale genetic value. Both are squashed through tanh so the
// product lands in [-1,1]; same sign means harmony.
func HarmonyScore(dignityValue, geneticZ float64) float64 {
	return math.Tanh(dignityValue/5.0) * math.Tanh(geneticZ)
}

func checkUnitLabels(obs []correlation.PairedObservation) error {
	seen := make(map[string]struct{}, len(obs))
	for _, o := range obs {
		if _, dup := seen[o.UnitLabel]; dup {
			return core.NewInvalidInputError("unit_label", "duplicate label "+o.UnitLabel)
		}
		seen[o.UnitLabel] = struct{}{}
	}
	return nil
}

func sortObservations(obs []correlation.PairedObservation) {
	sort.Slice(obs, func(i, j int) bool { return obs[i].UnitLabel < obs[j].UnitLabel })
}
