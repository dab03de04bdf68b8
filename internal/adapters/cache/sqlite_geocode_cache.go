package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"strings"
)

// SQLite backed cache mapping normalized place queries to resolved places.
// Keys are expected to be normalized by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

func (s *SqliteGeocodeCache) GetPlace(ctx context.Context, key string) (domain.Place, bool, error) {
	if s.DB == nil {
		return domain.Place{}, false, errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Place{}, false, errors.New("get geocode cache: key must not be empty")
	}

	q := `
	SELECT
		name,
		lat,
		lon
	FROM geocode_cache
	WHERE query_key = ?;
	`

	var p domain.Place
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&p.Name, &p.Coordinate.Lat, &p.Coordinate.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Place{}, false, nil
	}
	if err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return p, true, nil
}

func (s *SqliteGeocodeCache) PutPlace(ctx context.Context, key string, place domain.Place) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("insert geocode cache: empty key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
		query_key,
		name,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, key, place.Name, place.Coordinate.Lat, place.Coordinate.Lon); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
