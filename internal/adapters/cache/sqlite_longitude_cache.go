package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
)

// SQLite backed cache of raw ephemeris longitudes keyed by (jd, body code).
type SqliteLongitudeCache struct {
	DB *sql.DB
}

func NewSqliteLongitudeCache(db *sql.DB) *SqliteLongitudeCache {
	return &SqliteLongitudeCache{DB: db}
}

func (s *SqliteLongitudeCache) GetLongitude(
	ctx context.Context,
	jd domain.JulianDay,
	code domain.BodyCode,
) (float64, bool, error) {
	if s.DB == nil {
		return 0, false, errors.New("longitude cache: db is nil")
	}

	q := `
	SELECT longitude
	FROM longitude_cache
	WHERE jd_key = ? AND body = ?;
	`

	var lon float64
	err := s.DB.QueryRowContext(ctx, q, jdKey(jd), int(code)).Scan(&lon)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get longitude cache: query longitude_cache table: %w", err)
	}

	return lon, true, nil
}

func (s *SqliteLongitudeCache) PutLongitude(
	ctx context.Context,
	jd domain.JulianDay,
	code domain.BodyCode,
	lon float64,
) error {
	if s.DB == nil {
		return errors.New("longitude cache: db is nil")
	}

	q := `
	INSERT OR REPLACE INTO longitude_cache (
		jd_key,
		body,
		longitude
	)
	VALUES (?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, jdKey(jd), int(code), lon); err != nil {
		return fmt.Errorf("insert longitude cache body=%d: %w", code, err)
	}

	return nil
}
