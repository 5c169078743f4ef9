package ephemeris

import (
	"context"
	"math"
	"time"

	"astrogen/domain/chart"
	"astrogen/domain/core"
	"astrogen/ports"
)

// Supported date range. Mean orbital elements drift badly outside it.
const (
	minYear = 1800
	maxYear = 2100
)

// j2000 is the standard epoch the mean elements are referenced to.
var j2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// meanElement holds a body's ecliptic longitude at epoch and its mean
// daily motion in degrees.
type meanElement struct {
	epochLongitude float64
	dailyMotion    float64
}

// Mean geocentric elements. Positional accuracy is deliberately coarse;
// the contract is determinism, not astronomy.
var meanElements = map[chart.Body]meanElement{
	chart.Sun:       {280.460, 0.9856474},
	chart.Moon:      {218.316, 13.176396},
	chart.Mercury:   {252.251, 4.0923344},
	chart.Venus:     {181.980, 1.6021302},
	chart.Mars:      {355.433, 0.5240208},
	chart.Jupiter:   {34.351, 0.0830853},
	chart.Saturn:    {50.077, 0.0334442},
	chart.Uranus:    {314.055, 0.0117258},
	chart.Neptune:   {304.348, 0.0059810},
	chart.Pluto:     {238.929, 0.0039757},
	chart.NorthNode: {125.045, -0.0529539},
}

// Analytic is a deterministic mean-element ephemeris with equal houses.
type Analytic struct{}

var _ ports.Ephemeris = (*Analytic)(nil)

func NewAnalytic() *Analytic {
	return &Analytic{}
}

// ChartPositions computes body longitudes from mean elements, an equal
// house system anchored on the ascendant, and sect from the Sun's house.
func (e *Analytic) ChartPositions(ctx context.Context, at time.Time, latitude, longitude float64) (*chart.Chart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if at.Year() < minYear || at.Year() > maxYear {
		return nil, core.NewEphemerisRangeError(at.Year())
	}
	if latitude < -90 || latitude > 90 {
		return nil, core.NewInvalidInputError("latitude", "outside [-90,90]")
	}
	if longitude < -180 || longitude > 180 {
		return nil, core.NewInvalidInputError("longitude", "outside [-180,180]")
	}

	days := at.Sub(j2000).Hours() / 24

	c := &chart.Chart{
		Moment: core.BirthMoment{
			At:        core.NewTimestamp(at),
			Latitude:  latitude,
			Longitude: longitude,
		},
		Positions: make(map[chart.Body]chart.ChartPosition, len(meanElements)+1),
	}

	c.Ascendant = ascendant(at, latitude, longitude)
	c.Midheaven = normalize(c.Ascendant + 270)
	for i := 0; i < 12; i++ {
		c.Houses[i] = normalize(c.Ascendant + float64(i)*30)
	}

	for body, elem := range meanElements {
		lon := normalize(elem.epochLongitude + elem.dailyMotion*days)
		c.Positions[body] = chart.ChartPosition{
			Body:       body,
			Longitude:  lon,
			House:      houseOf(lon, c.Ascendant),
			Retrograde: elem.dailyMotion < 0,
		}
	}
	// South node sits opposite the north node.
	north := c.Positions[chart.NorthNode]
	c.Positions[chart.SouthNode] = chart.ChartPosition{
		Body:      chart.SouthNode,
		Longitude: normalize(north.Longitude + 180),
		House:     houseOf(normalize(north.Longitude+180), c.Ascendant),
	}

	c.Sect = chart.NightSect
	if sun, ok := c.Positions[chart.Sun]; ok {
		// Houses 7 through 12 sit above the horizon.
		if sun.House >= 7 {
			c.Sect = chart.DaySect
		}
	}
	return c, nil
}

// ascendant derives a deterministic rising degree from local sidereal time.
func ascendant(at time.Time, latitude, longitude float64) float64 {
	days := at.Sub(j2000).Hours() / 24
	// Greenwich mean sidereal time in degrees.
	gmst := normalize(280.46062 + 360.98564737*days)
	lst := normalize(gmst + longitude)

	rad := lst * math.Pi / 180
	latRad := latitude * math.Pi / 180
	obliquity := 23.4393 * math.Pi / 180

	y := -math.Cos(rad)
	x := math.Sin(rad)*math.Cos(obliquity) + math.Tan(latRad)*math.Sin(obliquity)
	return normalize(math.Atan2(y, x) * 180 / math.Pi)
}

func houseOf(longitude, ascendant float64) int {
	offset := normalize(longitude - ascendant)
	return int(offset/30) + 1
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
