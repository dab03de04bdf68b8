package services

import (
	"math"
	"natal-position-service/internal/domain"
)

// NormalizeLongitude folds any finite longitude into [0, 360).
func NormalizeLongitude(lon float64) float64 {
	return math.Mod(math.Mod(lon, 360)+360, 360)
}

// ClassifyLongitude maps an ecliptic longitude onto its tropical zodiac sign.
// The longitude is normalized first; the returned placement keeps the
// unrounded values so Sign.Start()+DegreeInSign reconstructs Longitude.
func ClassifyLongitude(body domain.CelestialBody, lon float64) domain.SignPlacement {
	l := NormalizeLongitude(lon)

	idx := int(math.Floor(l / domain.SignDegree))
	idx = max(0, min(idx, domain.SignCount-1))

	return domain.SignPlacement{
		Body:         body,
		Sign:         domain.Sign(idx),
		DegreeInSign: l - float64(idx)*domain.SignDegree,
		Longitude:    l,
	}
}
