package genetics

// Genotype is the called zygosity of a variant relative to the reference allele.
type Genotype string

const (
	HomRef Genotype = "hom_ref"
	Het    Genotype = "het"
	HomAlt Genotype = "hom_alt"
)

// IsValid reports whether g is a recognized genotype call.
func (g Genotype) IsValid() bool {
	switch g {
	case HomRef, Het, HomAlt:
		return true
	}
	return false
}

// Pathway is a biological pathway grouping for variants.
type Pathway string

const (
	Cardiovascular   Pathway = "cardiovascular"
	Neurotransmitter Pathway = "neurotransmitter"
	Metabolic        Pathway = "metabolic"
	Inflammation     Pathway = "inflammation"
	Emotional        Pathway = "emotional"
	Athletic         Pathway = "athletic"
	Detoxification   Pathway = "detoxification"
)

// GeneticVariant is a single variant call for a subject.
// Sourced externally, read-only within the core.
type GeneticVariant struct {
	Gene       string   `json:"gene"`
	RSID       string   `json:"rs_id"`
	Genotype   Genotype `json:"genotype"`
	EffectSize float64  `json:"effect_size"` // > 0; magnitude of per-allele effect
}

// PathwayScore is the aggregate disruption of one pathway.
type PathwayScore struct {
	Pathway    Pathway `json:"pathway"`
	Disruption float64 `json:"disruption"` // [0,1], saturating in variant count
	Variants   int     `json:"variants"`   // member variants contributing
}

// PolygenicScore is a trait-level polygenic risk summary.
type PolygenicScore struct {
	Trait      string  `json:"trait"`
	Score      float64 `json:"score"`      // weighted allele sum (z-scale when referenced)
	Percentile float64 `json:"percentile"` // [0,100]
	Degraded   bool    `json:"degraded"`   // true when no reference distribution was configured
	Variants   int     `json:"variants"`
	Confidence float64 `json:"confidence"` // coverage of the trait's weight table, [0,1]
}
