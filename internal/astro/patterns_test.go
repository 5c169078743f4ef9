package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrogen/domain/chart"
)

func TestDetectGrandTrine(t *testing.T) {
	detector := NewPatternDetector(NewAspectScorer(8))
	c := &chart.Chart{
		Positions: map[chart.Body]chart.ChartPosition{
			chart.Sun:  {Body: chart.Sun, Longitude: 10},
			chart.Moon: {Body: chart.Moon, Longitude: 130},
			chart.Mars: {Body: chart.Mars, Longitude: 250},
		},
	}

	patterns := detector.Detect(c)
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.Equal(t, chart.GrandTrine, p.Type)
	assert.ElementsMatch(t, []chart.Body{chart.Sun, chart.Moon, chart.Mars}, p.Members)
	require.Len(t, p.Aspects, 3)
	assert.Equal(t, 1.0, p.Strength)
}

func TestDetectTSquareApexFirst(t *testing.T) {
	detector := NewPatternDetector(NewAspectScorer(8))
	c := &chart.Chart{
		Positions: map[chart.Body]chart.ChartPosition{
			chart.Sun:  {Body: chart.Sun, Longitude: 0},
			chart.Moon: {Body: chart.Moon, Longitude: 180},
			chart.Mars: {Body: chart.Mars, Longitude: 90},
		},
	}

	patterns := detector.Detect(c)
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.Equal(t, chart.TSquare, p.Type)
	require.Len(t, p.Members, 3)
	assert.Equal(t, chart.Mars, p.Members[0], "apex body leads the member list")
	require.Len(t, p.Aspects, 3)
	assert.Equal(t, chart.Opposition, p.Aspects[0].Type)
}

func TestPatternStrengthIsMeanOfMemberAspects(t *testing.T) {
	detector := NewPatternDetector(NewAspectScorer(8))
	// Opposition off by 4, both squares off by 2.
	c := &chart.Chart{
		Positions: map[chart.Body]chart.ChartPosition{
			chart.Sun:  {Body: chart.Sun, Longitude: 0},
			chart.Moon: {Body: chart.Moon, Longitude: 184},
			chart.Mars: {Body: chart.Mars, Longitude: 92},
		},
	}

	patterns := detector.Detect(c)
	require.Len(t, patterns, 1)

	want := (0.5 + 0.75 + 0.75) / 3
	assert.InDelta(t, want, patterns[0].Strength, 1e-12)
}

func TestDetectFindsNothingInScatteredChart(t *testing.T) {
	detector := NewPatternDetector(NewAspectScorer(8))
	c := &chart.Chart{
		Positions: map[chart.Body]chart.ChartPosition{
			chart.Sun:  {Body: chart.Sun, Longitude: 0},
			chart.Moon: {Body: chart.Moon, Longitude: 40},
			chart.Mars: {Body: chart.Mars, Longitude: 200},
		},
	}

	assert.Empty(t, detector.Detect(c))
}
