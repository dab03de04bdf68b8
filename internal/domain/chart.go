package domain

import "math"

// SignPlacement is the classification of one body's ecliptic longitude.
// Longitude and DegreeInSign are kept unrounded; display rounding happens on
// the way out. A placement with a non-nil Err is a placeholder.
type SignPlacement struct {
	Body         CelestialBody
	Sign         Sign
	DegreeInSign float64
	Longitude    float64
	Err          error
}

func (p SignPlacement) Failed() bool { return p.Err != nil }

func (p SignPlacement) RoundedDegree() float64 { return round2(p.DegreeInSign) }

func (p SignPlacement) RoundedLongitude() float64 { return round2(p.Longitude) }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// NatalChart holds one placement per roster body, in roster order.
// It is immutable once built; accessors hand out copies.
type NatalChart struct {
	jd         JulianDay
	location   GeoCoordinate
	placements [RosterSize]SignPlacement
}

// NewNatalChart builds a chart from placements indexed by body. Bodies missing
// from placements are recorded as failed.
func NewNatalChart(jd JulianDay, loc GeoCoordinate, placements []SignPlacement) NatalChart {
	c := NatalChart{jd: jd, location: loc}
	seen := [RosterSize]bool{}
	for _, p := range placements {
		if !p.Body.Valid() {
			continue
		}
		c.placements[p.Body] = p
		seen[p.Body] = true
	}
	for _, b := range Roster {
		if !seen[b] {
			c.placements[b] = Placeholder(b, &EphemerisUnavailableError{Body: b, Err: ErrEphemerisSystem})
		}
	}
	return c
}

// Placeholder returns the failed placement recorded for body.
func Placeholder(body CelestialBody, err error) SignPlacement {
	return SignPlacement{Body: body, Sign: SignError, Err: err}
}

func (c NatalChart) JulianDay() JulianDay { return c.jd }

func (c NatalChart) Location() GeoCoordinate { return c.location }

// Placement returns the entry for body. ok is false for bodies outside the roster.
func (c NatalChart) Placement(body CelestialBody) (SignPlacement, bool) {
	if !body.Valid() {
		return SignPlacement{}, false
	}
	return c.placements[body], true
}

// Placements returns a copy of every entry in roster order.
func (c NatalChart) Placements() []SignPlacement {
	out := make([]SignPlacement, 0, RosterSize)
	for _, b := range Roster {
		out = append(out, c.placements[b])
	}
	return out
}

// Failed lists the bodies whose placement is a placeholder.
func (c NatalChart) Failed() []CelestialBody {
	var out []CelestialBody
	for _, b := range Roster {
		if c.placements[b].Failed() {
			out = append(out, b)
		}
	}
	return out
}

// Degraded reports a chart in which every lookup failed.
func (c NatalChart) Degraded() bool { return len(c.Failed()) == RosterSize }
