package ports

import (
	"context"
	"natal-position-service/internal/domain"
)

// Port: persistent storage of raw ephemeris answers.
// A miss is reported as ok=false with a nil error.
type LongitudeCache interface {
	GetLongitude(ctx context.Context, jd domain.JulianDay, code domain.BodyCode) (lon float64, ok bool, err error)
	PutLongitude(ctx context.Context, jd domain.JulianDay, code domain.BodyCode, lon float64) error
}
