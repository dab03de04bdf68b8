package domain

import "strings"

// Sign is one of the twelve 30° sectors of the tropical zodiac, Aries first.
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

// SignError marks a placement whose longitude could not be obtained.
const SignError Sign = -1

const (
	SignCount  = 12
	SignDegree = 30.0
)

var signNames = [SignCount]string{
	"Áries", "Touro", "Gêmeos", "Câncer",
	"Leão", "Virgem", "Libra", "Escorpião",
	"Sagitário", "Capricórnio", "Aquário", "Peixes",
}

// ErrorMarker is the sign name shown for failed placements.
const ErrorMarker = "Erro"

func (s Sign) Valid() bool { return s >= 0 && s < SignCount }

func (s Sign) String() string {
	if !s.Valid() {
		return ErrorMarker
	}
	return signNames[s]
}

// Start returns the ecliptic longitude at which the sign begins.
func (s Sign) Start() float64 { return float64(s) * SignDegree }

// ParseSign accepts the display name of a sign, case-insensitively.
func ParseSign(name string) (Sign, bool) {
	name = strings.TrimSpace(name)
	for i, n := range signNames {
		if strings.EqualFold(n, name) {
			return Sign(i), true
		}
	}
	return SignError, false
}

// Element is the classical element ruling a sign.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

var elementNames = [...]string{"Fogo", "Terra", "Ar", "Água"}

func (e Element) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return ErrorMarker
	}
	return elementNames[e]
}

// Element cycles fire, earth, air, water starting at Aries.
func (s Sign) Element() (Element, bool) {
	if !s.Valid() {
		return 0, false
	}
	return Element(int(s) % 4), true
}
