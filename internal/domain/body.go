package domain

import "strings"

// CelestialBody identifies one body of the fixed roster.
type CelestialBody int

const (
	Sun CelestialBody = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
)

// BodyCode is the identifier the ephemeris provider understands.
// Values follow the Swiss Ephemeris body numbering.
type BodyCode int

// Roster lists the bodies computed for every chart, in output order.
// Outer planets and lunar nodes are not part of the free chart.
var Roster = [...]CelestialBody{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

// RosterSize is the number of entries in every NatalChart.
const RosterSize = len(Roster)

var bodyTable = [RosterSize]struct {
	name string
	code BodyCode
}{
	Sun:     {"Sol", 0},
	Moon:    {"Lua", 1},
	Mercury: {"Mercúrio", 2},
	Venus:   {"Vênus", 3},
	Mars:    {"Marte", 4},
	Jupiter: {"Júpiter", 5},
	Saturn:  {"Saturno", 6},
}

func (b CelestialBody) Valid() bool { return b >= 0 && int(b) < RosterSize }

// Name returns the display name used as the chart key.
func (b CelestialBody) Name() string {
	if !b.Valid() {
		return "Desconhecido"
	}
	return bodyTable[b].name
}

func (b CelestialBody) String() string { return b.Name() }

// Code returns the provider body code, or -1 for bodies outside the roster.
func (b CelestialBody) Code() BodyCode {
	if !b.Valid() {
		return -1
	}
	return bodyTable[b].code
}

// ParseBody looks a body up by display name, ignoring case and surrounding space.
func ParseBody(name string) (CelestialBody, bool) {
	name = strings.TrimSpace(name)
	for _, b := range Roster {
		if strings.EqualFold(bodyTable[b].name, name) {
			return b, true
		}
	}
	return 0, false
}

// BodyForCode maps a provider code back to its roster body.
func BodyForCode(code BodyCode) (CelestialBody, bool) {
	for _, b := range Roster {
		if bodyTable[b].code == code {
			return b, true
		}
	}
	return 0, false
}

// EclipticPosition is the raw ephemeris answer for one body.
type EclipticPosition struct {
	Body      CelestialBody
	Longitude float64
}
