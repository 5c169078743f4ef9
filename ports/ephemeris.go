package ports

import (
	"context"
	"time"

	"astrogen/domain/chart"
)

// Ephemeris provides planetary positions for a timestamp and location.
// Implementations must be deterministic: identical inputs always yield
// identical positions. Fails with core.ErrEphemerisUnavailable when the
// timestamp is outside the supported date range.
type Ephemeris interface {
	// ChartPositions returns positions for every supported body plus house
	// cusps and angles, assembled into a Chart.
	ChartPositions(ctx context.Context, at time.Time, latitude, longitude float64) (*chart.Chart, error)
}
