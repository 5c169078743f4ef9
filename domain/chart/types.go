package chart

import (
	"math"

	"astrogen/domain/core"
)

// Body identifies a chart point tracked by the engine.
type Body string

const (
	Sun       Body = "sun"
	Moon      Body = "moon"
	Mercury   Body = "mercury"
	Venus     Body = "venus"
	Mars      Body = "mars"
	Jupiter   Body = "jupiter"
	Saturn    Body = "saturn"
	Uranus    Body = "uranus"
	Neptune   Body = "neptune"
	Pluto     Body = "pluto"
	NorthNode Body = "north_node"
	SouthNode Body = "south_node"
)

// ClassicalBodies are the seven bodies with traditional dignity tables.
var ClassicalBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

// AllBodies lists every supported chart point in canonical order.
var AllBodies = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn,
	Uranus, Neptune, Pluto, NorthNode, SouthNode,
}

// IsValid reports whether b is a supported body.
func (b Body) IsValid() bool {
	for _, known := range AllBodies {
		if b == known {
			return true
		}
	}
	return false
}

// Sign is a zodiac sign, indexed 0 (Aries) through 11 (Pisces).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < 0 || int(s) >= len(signNames) {
		return "Unknown"
	}
	return signNames[s]
}

// IsValid reports whether s is one of the twelve signs.
func (s Sign) IsValid() bool {
	return s >= Aries && s <= Pisces
}

// Opposite returns the sign 180 degrees away.
func (s Sign) Opposite() Sign {
	return Sign((int(s) + 6) % 12)
}

// Element is a classical element grouping of signs.
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// Element returns the classical element of the sign.
func (s Sign) Element() Element {
	switch s % 4 {
	case 0:
		return Fire
	case 1:
		return Earth
	case 2:
		return Air
	default:
		return Water
	}
}

// SignFromLongitude maps an ecliptic longitude to its zodiac sign.
func SignFromLongitude(longitude float64) Sign {
	lon := math.Mod(longitude, 360)
	if lon < 0 {
		lon += 360
	}
	return Sign(int(lon / 30))
}

// Sect distinguishes day charts from night charts for triplicity rulers.
type Sect string

const (
	DaySect   Sect = "day"
	NightSect Sect = "night"
)

// ChartPosition is a single body's computed place in the chart.
// Immutable once computed for a given timestamp/location.
type ChartPosition struct {
	Body       Body    `json:"body"`
	Longitude  float64 `json:"longitude"` // ecliptic degrees [0,360)
	Latitude   float64 `json:"latitude"`
	House      int     `json:"house"` // [1,12]
	Retrograde bool    `json:"retrograde"`
}

// Sign returns the zodiac sign the position falls in.
func (p ChartPosition) Sign() Sign {
	return SignFromLongitude(p.Longitude)
}

// DegreeInSign returns the position's offset within its sign.
func (p ChartPosition) DegreeInSign() float64 {
	lon := math.Mod(p.Longitude, 360)
	if lon < 0 {
		lon += 360
	}
	return math.Mod(lon, 30)
}

// Chart is the complete computed natal chart for one subject.
type Chart struct {
	Moment    core.BirthMoment        `json:"moment"`
	Positions map[Body]ChartPosition  `json:"positions"`
	Houses    [12]float64             `json:"houses"` // cusp longitudes
	Ascendant float64                 `json:"ascendant"`
	Midheaven float64                 `json:"midheaven"`
	Sect      Sect                    `json:"sect"`
}

// Position returns the position of a body, if present.
func (c *Chart) Position(b Body) (ChartPosition, bool) {
	pos, ok := c.Positions[b]
	return pos, ok
}

// DignityBasis classifies which dignity category dominates a score.
type DignityBasis string

const (
	BasisDomicile   DignityBasis = "domicile"
	BasisExaltation DignityBasis = "exaltation"
	BasisTriplicity DignityBasis = "triplicity"
	BasisDetriment  DignityBasis = "detriment"
	BasisFall       DignityBasis = "fall"
	BasisPeregrine  DignityBasis = "peregrine"
)

// DignityScore is the derived traditional-strength value for one body.
// Recomputed per chart, never persisted mutable.
type DignityScore struct {
	Body  Body         `json:"body"`
	Sign  Sign         `json:"sign"`
	Value float64      `json:"value"` // [-5,+5]
	Basis DignityBasis `json:"basis"`
}

// AspectType names a significant angular relationship.
type AspectType string

const (
	Conjunction AspectType = "conjunction"
	Sextile     AspectType = "sextile"
	Square      AspectType = "square"
	Trine       AspectType = "trine"
	Opposition  AspectType = "opposition"
	Quintile    AspectType = "quintile"
	Septile     AspectType = "septile"
)

// AspectRecord is a detected aspect between two bodies.
// Strength decays monotonically with orb deviation from the exact angle.
type AspectRecord struct {
	BodyA    Body       `json:"body_a"`
	BodyB    Body       `json:"body_b"`
	Angle    float64    `json:"angle"` // actual separation, degrees [0,180]
	Type     AspectType `json:"aspect_type"`
	Orb      float64    `json:"orb"`      // deviation from exact, degrees
	Strength float64    `json:"strength"` // [0,1]
}

// PatternType names a detected multi-body configuration.
type PatternType string

const (
	GrandTrine PatternType = "grand_trine"
	TSquare    PatternType = "t_square"
)

// ChartPattern is a detected triplet configuration with composite strength.
type ChartPattern struct {
	Type     PatternType    `json:"type"`
	Members  []Body         `json:"members"`
	Aspects  []AspectRecord `json:"aspects"`
	Strength float64        `json:"strength"` // mean of member aspect strengths
}
