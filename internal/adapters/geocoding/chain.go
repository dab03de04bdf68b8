package geocoding

import (
	"context"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/ports"
)

// ChainGeocoder tries geocoders in order. A not-found answer moves on to the
// next geocoder; so does any other failure, which is kept for the final error.
type ChainGeocoder struct {
	geocoders []ports.Geocoder
}

func NewChainGeocoder(geocoders ...ports.Geocoder) (*ChainGeocoder, error) {
	kept := make([]ports.Geocoder, 0, len(geocoders))
	for _, g := range geocoders {
		if g != nil {
			kept = append(kept, g)
		}
	}
	if len(kept) == 0 {
		return nil, errors.New("geocoder chain: no geocoders")
	}
	return &ChainGeocoder{geocoders: kept}, nil
}

func (c *ChainGeocoder) Geocode(ctx context.Context, q domain.PlaceQuery) (domain.Place, error) {
	var failures []error
	for _, g := range c.geocoders {
		place, err := g.Geocode(ctx, q)
		if err == nil {
			return place, nil
		}
		if !errors.Is(err, domain.ErrPlaceNotFound) {
			failures = append(failures, err)
		}
		if ctx.Err() != nil {
			break
		}
	}

	if len(failures) > 0 {
		return domain.Place{}, fmt.Errorf("geocode %q: %w", q.City, errors.Join(failures...))
	}
	return domain.Place{}, fmt.Errorf("geocode %q: %w", q.City, domain.ErrPlaceNotFound)
}
