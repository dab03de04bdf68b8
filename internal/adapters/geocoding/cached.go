package geocoding

import (
	"context"
	"errors"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/obs"
	"natal-position-service/internal/ports"

	"go.uber.org/zap"
)

// CachedGeocoder consults a GeocodeCache keyed by QueryKey before calling next.
// Only successful lookups are stored.
type CachedGeocoder struct {
	next           ports.Geocoder
	cache          ports.GeocodeCache
	defaultCountry string
}

func NewCachedGeocoder(next ports.Geocoder, cache ports.GeocodeCache, defaultCountry string) (*CachedGeocoder, error) {
	if next == nil {
		return nil, errors.New("cached geocoder: next is nil")
	}
	if cache == nil {
		return nil, errors.New("cached geocoder: cache is nil")
	}
	if defaultCountry == "" {
		defaultCountry = DefaultCountry
	}
	return &CachedGeocoder{next: next, cache: cache, defaultCountry: defaultCountry}, nil
}

func (c *CachedGeocoder) Geocode(ctx context.Context, q domain.PlaceQuery) (domain.Place, error) {
	if q.Country == "" {
		q.Country = c.defaultCountry
	}
	key := QueryKey(q.City, q.Country)

	place, ok, err := c.cache.GetPlace(ctx, key)
	if err != nil {
		zap.L().Warn("geocode cache read failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
	} else if ok {
		return place, nil
	}

	place, err = c.next.Geocode(ctx, q)
	if err != nil {
		return domain.Place{}, err
	}

	if err := c.cache.PutPlace(ctx, key, place); err != nil {
		zap.L().Warn("geocode cache write failed", zap.String("req_id", obs.RequestID(ctx)), zap.Error(err))
	}

	return place, nil
}
