package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/obs"
)

// SQLLongitudeCache is the Postgres flavour of the longitude cache, shared
// between server instances.
type SQLLongitudeCache struct {
	DB *sql.DB
}

func NewSQLLongitudeCache(db *sql.DB) *SQLLongitudeCache {
	return &SQLLongitudeCache{DB: db}
}

func (s *SQLLongitudeCache) GetLongitude(
	ctx context.Context,
	jd domain.JulianDay,
	code domain.BodyCode,
) (_ float64, _ bool, err error) {
	defer obs.Time(ctx, "longitude.cache.Get")(&err)

	if s.DB == nil {
		return 0, false, errors.New("longitude cache: db is nil")
	}

	q := `
	SELECT longitude
	FROM longitude_cache
	WHERE jd_key = $1 AND body = $2;
	`

	var lon float64
	err = s.DB.QueryRowContext(ctx, q, jdKey(jd), int(code)).Scan(&lon)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get longitude cache: query longitude_cache table: %w", err)
	}

	return lon, true, nil
}

func (s *SQLLongitudeCache) PutLongitude(
	ctx context.Context,
	jd domain.JulianDay,
	code domain.BodyCode,
	lon float64,
) error {
	if s.DB == nil {
		return errors.New("longitude cache: db is nil")
	}

	q := `
	INSERT INTO longitude_cache (jd_key, body, longitude)
	VALUES ($1, $2, $3)
	ON CONFLICT (jd_key, body) DO UPDATE
	SET longitude = EXCLUDED.longitude;
	`
	if _, err := s.DB.ExecContext(ctx, q, jdKey(jd), int(code), lon); err != nil {
		return fmt.Errorf("insert longitude cache body=%d: %w", code, err)
	}

	return nil
}
