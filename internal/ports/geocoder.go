package ports

import (
	"context"
	"natal-position-service/internal/domain"
)

// Contract for turning a place name into coordinates.
// Implementations return domain.ErrPlaceNotFound (possibly wrapped) when
// nothing matches.
type Geocoder interface {
	Geocode(ctx context.Context, q domain.PlaceQuery) (domain.Place, error)
}

// Port: persistent cache of geocoding results keyed by normalized query.
type GeocodeCache interface {
	GetPlace(ctx context.Context, key string) (domain.Place, bool, error)
	PutPlace(ctx context.Context, key string, place domain.Place) error
}
