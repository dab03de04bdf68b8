package ports

import (
	"context"
	"natal-position-service/internal/domain"
)

// Contract for the external ephemeris capability.
//
// Implementations return the ecliptic longitude in degrees; the value is not
// required to be normalized to [0, 360). Providers that wrap a library which
// is not safe for concurrent use must serialize access themselves.
type EphemerisProvider interface {
	EclipticLongitude(ctx context.Context, jd domain.JulianDay, code domain.BodyCode) (float64, error)
}
