package astro

import (
	"sort"

	"astrogen/domain/chart"
	"astrogen/domain/core"
)

// Dignity category weights. Domicile/detriment and exaltation/fall are
// exact negatives so that rotating a domicile placement to the opposite
// sign flips the score's sign without changing its magnitude.
const (
	domicileWeight   = 5.0
	exaltationWeight = 4.0
	triplicityWeight = 3.0
	detrimentWeight  = -5.0
	fallWeight       = -4.0
)

// DignityScorer converts chart positions into traditional-strength scores.
type DignityScorer struct {
	tables DignityTables
}

// NewDignityScorer creates a scorer over the given rulership tables.
func NewDignityScorer(tables DignityTables) *DignityScorer {
	return &DignityScorer{tables: tables}
}

// Score computes the dignity score for a single position. At most one
// positive category applies (domicile over exaltation over triplicity) and
// at most one negative (detriment over fall); a position cannot hold both
// a positive and a negative because detriments and falls sit opposite the
// corresponding domiciles and exaltations.
func (s *DignityScorer) Score(pos chart.ChartPosition, sect chart.Sect) (chart.DignityScore, error) {
	if !pos.Body.IsValid() {
		return chart.DignityScore{}, core.ErrUnknownBody
	}
	sign := pos.Sign()
	if !sign.IsValid() {
		return chart.DignityScore{}, core.ErrUnknownSign
	}

	score := chart.DignityScore{
		Body:  pos.Body,
		Sign:  sign,
		Basis: chart.BasisPeregrine,
	}

	// Detriment and fall are checked before triplicity: a debilitated body
	// never collects triplicity credit in the sign of its debility, which
	// keeps the domicile/detriment rotation symmetry exact in both sects.
	switch {
	case containsSign(s.tables.Domiciles[pos.Body], sign):
		score.Value = domicileWeight
		score.Basis = chart.BasisDomicile
	case s.hasExaltation(pos.Body) && s.tables.Exaltations[pos.Body] == sign:
		score.Value = exaltationWeight
		score.Basis = chart.BasisExaltation
	case containsSign(s.tables.Detriments[pos.Body], sign):
		score.Value = detrimentWeight
		score.Basis = chart.BasisDetriment
	case s.hasFall(pos.Body) && s.tables.Falls[pos.Body] == sign:
		score.Value = fallWeight
		score.Basis = chart.BasisFall
	case s.isTriplicityRuler(pos.Body, sign, sect):
		score.Value = triplicityWeight
		score.Basis = chart.BasisTriplicity
	}

	return score, nil
}

// AllDignities scores every classical body present in the chart. Modern
// bodies carry no traditional dignities and are skipped.
func (s *DignityScorer) AllDignities(c *chart.Chart) (map[chart.Body]chart.DignityScore, error) {
	scores := make(map[chart.Body]chart.DignityScore, len(chart.ClassicalBodies))
	for _, body := range chart.ClassicalBodies {
		pos, ok := c.Position(body)
		if !ok {
			continue
		}
		score, err := s.Score(pos, c.Sect)
		if err != nil {
			return nil, err
		}
		scores[body] = score
	}
	return scores, nil
}

// ChartStrength sums the dignity scores across all classical bodies.
func (s *DignityScorer) ChartStrength(c *chart.Chart) (float64, error) {
	scores, err := s.AllDignities(c)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, score := range scores {
		total += score.Value
	}
	return total, nil
}

// StrongestBodies returns the n highest-scoring bodies, strongest first.
func (s *DignityScorer) StrongestBodies(c *chart.Chart, n int) ([]chart.DignityScore, error) {
	scores, err := s.AllDignities(c)
	if err != nil {
		return nil, err
	}
	ranked := make([]chart.DignityScore, 0, len(scores))
	for _, score := range scores {
		ranked = append(ranked, score)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Body < ranked[j].Body
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

func (s *DignityScorer) hasExaltation(b chart.Body) bool {
	_, ok := s.tables.Exaltations[b]
	return ok
}

func (s *DignityScorer) hasFall(b chart.Body) bool {
	_, ok := s.tables.Falls[b]
	return ok
}

func (s *DignityScorer) isTriplicityRuler(b chart.Body, sign chart.Sign, sect chart.Sect) bool {
	rulers, ok := s.tables.Triplicities[sign.Element()]
	if !ok {
		return false
	}
	return rulers[sect] == b
}

func containsSign(signs []chart.Sign, sign chart.Sign) bool {
	for _, s := range signs {
		if s == sign {
			return true
		}
	}
	return false
}
