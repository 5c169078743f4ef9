package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrogen/domain/chart"
	"astrogen/domain/core"
)

func positionIn(body chart.Body, sign chart.Sign) chart.ChartPosition {
	return chart.ChartPosition{Body: body, Longitude: float64(sign)*30 + 5, House: 1}
}

func TestDignityScoreSunInLeo(t *testing.T) {
	scorer := NewDignityScorer(DefaultDignityTables())

	score, err := scorer.Score(positionIn(chart.Sun, chart.Leo), chart.DaySect)
	require.NoError(t, err)
	assert.Equal(t, 5.0, score.Value)
	assert.Equal(t, chart.BasisDomicile, score.Basis)
}

// Rotating a domicile placement to the opposite sign must flip the score's
// sign exactly: domicile +5 becomes detriment -5 for every body.
func TestDignitySignRotationSymmetry(t *testing.T) {
	tables := DefaultDignityTables()
	scorer := NewDignityScorer(tables)

	for body, signs := range tables.Domiciles {
		for _, sign := range signs {
			home, err := scorer.Score(positionIn(body, sign), chart.DaySect)
			require.NoError(t, err)
			exile, err := scorer.Score(positionIn(body, sign.Opposite()), chart.DaySect)
			require.NoError(t, err)

			assert.Equal(t, chart.BasisDomicile, home.Basis, "%s in %s", body, sign)
			assert.Equal(t, chart.BasisDetriment, exile.Basis, "%s in %s", body, sign.Opposite())
			assert.Equal(t, -home.Value, exile.Value, "%s rotation", body)
		}
	}

	for body, sign := range tables.Exaltations {
		// Mercury's exaltation coincides with a domicile (Virgo), and the
		// opposite sign is then a detriment, so the score pair there is
		// covered by the domicile loop above.
		if body == chart.Mercury {
			continue
		}
		exalted, err := scorer.Score(positionIn(body, sign), chart.DaySect)
		require.NoError(t, err)
		fallen, err := scorer.Score(positionIn(body, sign.Opposite()), chart.DaySect)
		require.NoError(t, err)

		assert.Equal(t, chart.BasisExaltation, exalted.Basis)
		assert.Equal(t, chart.BasisFall, fallen.Basis)
		assert.Equal(t, -exalted.Value, fallen.Value, "%s exaltation rotation", body)
	}
}

func TestDignityTriplicityBySect(t *testing.T) {
	scorer := NewDignityScorer(DefaultDignityTables())

	// Saturn rules the air triplicity by day; Gemini is an air sign and
	// neither Saturn's domicile, exaltation, detriment, nor fall.
	day, err := scorer.Score(positionIn(chart.Saturn, chart.Gemini), chart.DaySect)
	require.NoError(t, err)
	assert.Equal(t, chart.BasisTriplicity, day.Basis)
	assert.Equal(t, 3.0, day.Value)

	night, err := scorer.Score(positionIn(chart.Saturn, chart.Gemini), chart.NightSect)
	require.NoError(t, err)
	assert.Equal(t, chart.BasisPeregrine, night.Basis)
	assert.Equal(t, 0.0, night.Value)
}

func TestDignityPeregrine(t *testing.T) {
	scorer := NewDignityScorer(DefaultDignityTables())

	// Gemini is an air sign, so the Sun holds no dignity there at night.
	score, err := scorer.Score(positionIn(chart.Sun, chart.Gemini), chart.NightSect)
	require.NoError(t, err)
	assert.Equal(t, chart.BasisPeregrine, score.Basis)
	assert.Equal(t, 0.0, score.Value)
}

func TestDignityInvalidBody(t *testing.T) {
	scorer := NewDignityScorer(DefaultDignityTables())

	_, err := scorer.Score(chart.ChartPosition{Body: chart.Body("vulcan"), Longitude: 10}, chart.DaySect)
	assert.ErrorIs(t, err, core.ErrUnknownBody)
}

func TestAllDignitiesSkipsModernBodies(t *testing.T) {
	scorer := NewDignityScorer(DefaultDignityTables())

	c := &chart.Chart{
		Sect: chart.DaySect,
		Positions: map[chart.Body]chart.ChartPosition{
			chart.Sun:   positionIn(chart.Sun, chart.Leo),
			chart.Pluto: positionIn(chart.Pluto, chart.Leo),
		},
	}
	scores, err := scorer.AllDignities(c)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
	assert.Contains(t, scores, chart.Sun)
}

func TestStrongestBodiesOrdering(t *testing.T) {
	scorer := NewDignityScorer(DefaultDignityTables())

	c := &chart.Chart{
		Sect: chart.NightSect,
		Positions: map[chart.Body]chart.ChartPosition{
			chart.Sun:  positionIn(chart.Sun, chart.Leo),      // +5
			chart.Moon: positionIn(chart.Moon, chart.Taurus),  // +4
			chart.Mars: positionIn(chart.Mars, chart.Cancer),  // fall, -4
		},
	}
	ranked, err := scorer.StrongestBodies(c, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, chart.Sun, ranked[0].Body)
	assert.Equal(t, chart.Moon, ranked[1].Body)
}
