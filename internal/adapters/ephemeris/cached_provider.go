package ephemeris

import (
	"context"
	"errors"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/obs"
	"natal-position-service/internal/ports"

	"go.uber.org/zap"
)

// CachedProvider consults a LongitudeCache before delegating to next.
// Cache failures are logged and treated as misses; they never fail a lookup.
type CachedProvider struct {
	next  ports.EphemerisProvider
	cache ports.LongitudeCache
}

func NewCachedProvider(next ports.EphemerisProvider, cache ports.LongitudeCache) (*CachedProvider, error) {
	if next == nil {
		return nil, errors.New("cached ephemeris: next provider is nil")
	}
	if cache == nil {
		return nil, errors.New("cached ephemeris: cache is nil")
	}
	return &CachedProvider{next: next, cache: cache}, nil
}

func (c *CachedProvider) EclipticLongitude(ctx context.Context, jd domain.JulianDay, code domain.BodyCode) (float64, error) {
	lon, ok, err := c.cache.GetLongitude(ctx, jd, code)
	if err != nil {
		zap.L().Warn("longitude cache read failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
	} else if ok {
		return lon, nil
	}

	lon, err = c.next.EclipticLongitude(ctx, jd, code)
	if err != nil {
		return 0, err
	}

	if err := c.cache.PutLongitude(ctx, jd, code, lon); err != nil {
		zap.L().Warn("longitude cache write failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
	}

	return lon, nil
}
