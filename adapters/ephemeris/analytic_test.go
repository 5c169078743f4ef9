package ephemeris

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrogen/domain/chart"
	"astrogen/domain/core"
)

var birth = time.Date(1990, 6, 15, 14, 30, 0, 0, time.UTC)

func TestChartPositionsDeterministic(t *testing.T) {
	e := NewAnalytic()

	first, err := e.ChartPositions(context.Background(), birth, 40.7128, -74.0060)
	require.NoError(t, err)
	second, err := e.ChartPositions(context.Background(), birth, 40.7128, -74.0060)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestChartPositionsCompleteness(t *testing.T) {
	e := NewAnalytic()

	c, err := e.ChartPositions(context.Background(), birth, 40.7128, -74.0060)
	require.NoError(t, err)

	require.Len(t, c.Positions, 12, "ten bodies plus both nodes")
	for body, pos := range c.Positions {
		assert.Equal(t, body, pos.Body)
		assert.GreaterOrEqual(t, pos.Longitude, 0.0)
		assert.Less(t, pos.Longitude, 360.0)
		assert.GreaterOrEqual(t, pos.House, 1, "body %s", body)
		assert.LessOrEqual(t, pos.House, 12, "body %s", body)
	}

	assert.Contains(t, []chart.Sect{chart.DaySect, chart.NightSect}, c.Sect)
	assert.Equal(t, c.Houses[0], c.Ascendant)
}

func TestSouthNodeOppositeNorthNode(t *testing.T) {
	e := NewAnalytic()

	c, err := e.ChartPositions(context.Background(), birth, 51.5074, -0.1278)
	require.NoError(t, err)

	north := c.Positions[chart.NorthNode]
	south := c.Positions[chart.SouthNode]
	diff := south.Longitude - north.Longitude
	if diff < 0 {
		diff += 360
	}
	assert.InDelta(t, 180.0, diff, 1e-9)
	assert.True(t, north.Retrograde)
}

func TestChartPositionsDateRange(t *testing.T) {
	e := NewAnalytic()

	_, err := e.ChartPositions(context.Background(), time.Date(1799, 12, 31, 0, 0, 0, 0, time.UTC), 0, 0)
	assert.ErrorIs(t, err, core.ErrEphemerisUnavailable)

	_, err = e.ChartPositions(context.Background(), time.Date(2101, 1, 1, 0, 0, 0, 0, time.UTC), 0, 0)
	assert.ErrorIs(t, err, core.ErrEphemerisUnavailable)

	_, err = e.ChartPositions(context.Background(), time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC), 0, 0)
	assert.NoError(t, err)
}

func TestChartPositionsCoordinateValidation(t *testing.T) {
	e := NewAnalytic()

	_, err := e.ChartPositions(context.Background(), birth, 91, 0)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = e.ChartPositions(context.Background(), birth, 0, 181)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestChartPositionsLocationSensitivity(t *testing.T) {
	e := NewAnalytic()

	nyc, err := e.ChartPositions(context.Background(), birth, 40.7128, -74.0060)
	require.NoError(t, err)
	tokyo, err := e.ChartPositions(context.Background(), birth, 35.6762, 139.6503)
	require.NoError(t, err)

	// Same instant, different horizon: longitudes match, houses move.
	assert.Equal(t, nyc.Positions[chart.Sun].Longitude, tokyo.Positions[chart.Sun].Longitude)
	assert.NotEqual(t, nyc.Ascendant, tokyo.Ascendant)
}

func TestChartPositionsCanceledContext(t *testing.T) {
	e := NewAnalytic()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ChartPositions(ctx, birth, 0, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
