package genetics

import (
	"astrogen/domain/genetics"
)

// VariantAnnotation carries the reference data for one known variant.
type VariantAnnotation struct {
	Gene       string
	Pathway    genetics.Pathway
	EffectSize float64
}

// PopulationReference holds the reference distribution parameters used to
// convert a raw polygenic score into a population percentile.
type PopulationReference struct {
	Mean   float64
	StdDev float64
}

// ReferenceTables bundles the swappable genetic reference data: variant
// annotations, per-trait PRS weights, and population distributions.
// Loaded once at process start; the Excel adapter can override the
// built-ins from a workbook.
type ReferenceTables struct {
	Annotations map[string]VariantAnnotation    // keyed by rsID
	PRSWeights  map[string]map[string]float64   // trait -> rsID -> weight
	References  map[string]PopulationReference  // trait -> distribution
	// PathwayNormalizer is the saturation constant: disruption =
	// 1 - exp(-sum/normalizer), so larger values saturate more slowly.
	PathwayNormalizer float64
}

// DefaultReferenceTables returns the built-in annotation and weight
// tables. The mappings are domain content, not algorithm: correctness of
// any given entry is a scientific claim outside the engine's scope.
func DefaultReferenceTables() ReferenceTables {
	return ReferenceTables{
		Annotations: map[string]VariantAnnotation{
			// Inflammation cluster
			"rs1800896": {Gene: "IL10", Pathway: genetics.Inflammation, EffectSize: 0.5},
			"rs1143634": {Gene: "IL1B", Pathway: genetics.Inflammation, EffectSize: 0.7},
			"rs20541":   {Gene: "IL13", Pathway: genetics.Inflammation, EffectSize: 0.6},
			"rs361525":  {Gene: "TNF", Pathway: genetics.Inflammation, EffectSize: 0.8},
			"rs1800795": {Gene: "IL6", Pathway: genetics.Inflammation, EffectSize: 0.9},
			"rs1815739": {Gene: "ACTN3", Pathway: genetics.Athletic, EffectSize: 1.2},

			// Metabolic / cardiovascular cluster
			"rs1801282":  {Gene: "PPARG", Pathway: genetics.Metabolic, EffectSize: 1.2},
			"rs7903146":  {Gene: "TCF7L2", Pathway: genetics.Metabolic, EffectSize: 1.5},
			"rs1801133":  {Gene: "MTHFR", Pathway: genetics.Metabolic, EffectSize: 1.3},
			"rs1333049":  {Gene: "CDKN2A", Pathway: genetics.Cardiovascular, EffectSize: 1.1},
			"rs10757278": {Gene: "CDKN2B", Pathway: genetics.Cardiovascular, EffectSize: 1.0},
			"rs429358":   {Gene: "APOE", Pathway: genetics.Cardiovascular, EffectSize: 2.5},
			"rs7412":     {Gene: "APOE", Pathway: genetics.Cardiovascular, EffectSize: 1.8},
			"rs662":      {Gene: "PON1", Pathway: genetics.Detoxification, EffectSize: 0.6},

			// Neurotransmitter cluster
			"rs53576":   {Gene: "OXTR", Pathway: genetics.Neurotransmitter, EffectSize: 0.8},
			"rs6265":    {Gene: "BDNF", Pathway: genetics.Neurotransmitter, EffectSize: 1.0},
			"rs1800497": {Gene: "DRD2", Pathway: genetics.Neurotransmitter, EffectSize: 0.9},
			"rs4680":    {Gene: "COMT", Pathway: genetics.Neurotransmitter, EffectSize: 0.8},

			// Emotional regulation cluster
			"rs6295":    {Gene: "HTR1A", Pathway: genetics.Emotional, EffectSize: 0.7},
			"rs1006737": {Gene: "CACNA1C", Pathway: genetics.Emotional, EffectSize: 1.1},
			"rs4570625": {Gene: "TPH2", Pathway: genetics.Emotional, EffectSize: 0.9},
		},
		PRSWeights: map[string]map[string]float64{
			"cardiovascular_disease": {
				"rs429358":  0.35,
				"rs7412":    -0.28,
				"rs662":     0.15,
				"rs1333049": 0.22,
				"rs1801133": 0.12,
			},
			"cognitive_ability": {
				"rs4680":    -0.18,
				"rs6265":    0.25,
				"rs1800497": -0.12,
				"rs53576":   0.10,
			},
			"inflammatory_response": {
				"rs361525":  0.30,
				"rs1800896": -0.20,
				"rs1143634": 0.25,
				"rs1800795": 0.18,
			},
			"metabolic_efficiency": {
				"rs1801133": 0.22,
				"rs1801282": -0.28,
				"rs7903146": 0.32,
			},
			"athletic_performance": {
				"rs1815739": 0.45,
				"rs1800795": 0.10,
			},
		},
		References: map[string]PopulationReference{
			"cardiovascular_disease": {Mean: 0, StdDev: 1},
			"cognitive_ability":      {Mean: 0, StdDev: 1},
			"inflammatory_response":  {Mean: 0, StdDev: 1},
			"metabolic_efficiency":   {Mean: 0, StdDev: 1},
			"athletic_performance":   {Mean: 0, StdDev: 1},
		},
		PathwayNormalizer: 3.0,
	}
}

// Annotation looks up the reference data for a variant, falling back to
// the variant's own effect size when the rsID is unknown.
func (t ReferenceTables) Annotation(v genetics.GeneticVariant) (VariantAnnotation, bool) {
	if ann, ok := t.Annotations[v.RSID]; ok {
		return ann, true
	}
	return VariantAnnotation{Gene: v.Gene, EffectSize: v.EffectSize}, false
}

// Traits returns the trait names with configured PRS weights.
func (t ReferenceTables) Traits() []string {
	traits := make([]string, 0, len(t.PRSWeights))
	for trait := range t.PRSWeights {
		traits = append(traits, trait)
	}
	return traits
}
