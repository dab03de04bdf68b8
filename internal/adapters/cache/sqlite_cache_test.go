package cache

import (
	"context"
	"database/sql"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.OpenSqlite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(ctx, conn))
	// Schema creation is idempotent.
	require.NoError(t, InitSchema(ctx, conn))
	return conn
}

func TestSqliteLongitudeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewSqliteLongitudeCache(openTestDB(t))

	_, ok, err := c.GetLongitude(ctx, 2447893.0, domain.Sun.Code())
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.PutLongitude(ctx, 2447893.0, domain.Sun.Code(), 280.5))
	require.NoError(t, c.PutLongitude(ctx, 2447893.0, domain.Moon.Code(), 15.25))

	lon, ok, err := c.GetLongitude(ctx, 2447893.0, domain.Sun.Code())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 280.5, lon)

	// Overwrite keeps one row per key.
	require.NoError(t, c.PutLongitude(ctx, 2447893.0, domain.Sun.Code(), 281))
	lon, _, err = c.GetLongitude(ctx, 2447893.0, domain.Sun.Code())
	require.NoError(t, err)
	assert.Equal(t, 281.0, lon)

	_, ok, err = c.GetLongitude(ctx, 2447893.5, domain.Sun.Code())
	require.NoError(t, err)
	assert.False(t, ok, "different julian day must miss")
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewSqliteGeocodeCache(openTestDB(t))

	_, ok, err := c.GetPlace(ctx, "porto alegre|brasil")
	require.NoError(t, err)
	assert.False(t, ok)

	want := domain.Place{Name: "Porto Alegre, RS", Coordinate: domain.GeoCoordinate{Lat: -30.0346, Lon: -51.2177}}
	require.NoError(t, c.PutPlace(ctx, "porto alegre|brasil", want))

	got, ok, err := c.GetPlace(ctx, " porto alegre|brasil ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	assert.Error(t, c.PutPlace(ctx, "  ", want))
}

func TestNilDBGuards(t *testing.T) {
	ctx := context.Background()

	_, _, err := NewSqliteLongitudeCache(nil).GetLongitude(ctx, 0, 0)
	assert.Error(t, err)
	assert.Error(t, NewSQLLongitudeCache(nil).PutLongitude(ctx, 0, 0, 1))
	_, _, err = NewSQLGeocodeCache(nil).GetPlace(ctx, "x")
	assert.Error(t, err)
	assert.Error(t, InitSchema(ctx, nil))
}
