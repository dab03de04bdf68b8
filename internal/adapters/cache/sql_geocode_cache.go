package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/obs"
	"strings"
)

// SQLGeocodeCache is a Postgres-backed cache mapping place queries to places.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

func (s *SQLGeocodeCache) GetPlace(ctx context.Context, key string) (_ domain.Place, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Place{}, false, errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Place{}, false, errors.New("get geocode cache: key must not be empty")
	}

	q := `
	SELECT name, lat, lon
	FROM geocode_cache
	WHERE query_key = $1;
	`

	var p domain.Place
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&p.Name, &p.Coordinate.Lat, &p.Coordinate.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Place{}, false, nil
	}
	if err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return p, true, nil
}

func (s *SQLGeocodeCache) PutPlace(ctx context.Context, key string, place domain.Place) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("insert geocode cache: empty key")
	}

	q := `
	INSERT INTO geocode_cache (query_key, name, lat, lon)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (query_key) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`
	if _, err := s.DB.ExecContext(ctx, q, key, place.Name, place.Coordinate.Lat, place.Coordinate.Lon); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
