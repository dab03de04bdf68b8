package app

import (
	"context"
	"fmt"
	"natal-position-service/internal/config"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/services"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ephemerisServer answers body*30+5 degrees for every lookup.
func ephemerisServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, err := strconv.Atoi(r.URL.Query().Get("body"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, `{"longitude": %d}`, body*30+5)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func baseConfig() config.Config {
	return config.Config{
		CacheBackend:      config.CacheNone,
		EphemerisTimeout:  time.Second,
		EphemerisAttempts: 1,
		DefaultCountry:    "Brasil",
	}
}

var request = services.ChartRequest{
	Instant:  domain.CivilInstant{Year: 1990, Month: 1, Day: 1, Hour: 12},
	Location: domain.GeoCoordinate{Lat: -30.0346, Lon: -51.2177},
}

func TestBuildWithoutEphemerisDegrades(t *testing.T) {
	c, err := Build(context.Background(), baseConfig())
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.Provider)

	chart, err := services.CalculateChart(context.Background(), request, c.Provider)
	require.NoError(t, err)
	assert.True(t, chart.Degraded())

	place, err := c.Geocoder.Geocode(context.Background(), domain.PlaceQuery{City: "Curitiba"})
	require.NoError(t, err)
	assert.Equal(t, "Curitiba, PR", place.Name)
}

func TestBuildSqliteCachesLongitudes(t *testing.T) {
	var hits atomic.Int32
	srv := ephemerisServer(t, &hits)

	cfg := baseConfig()
	cfg.EphemerisURL = srv.URL
	cfg.CacheBackend = config.CacheSqlite
	cfg.DBPath = ":memory:"

	c, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	for n := 0; n < 2; n++ {
		chart, err := services.CalculateChart(context.Background(), request, c.Provider)
		require.NoError(t, err)
		assert.Empty(t, chart.Failed())

		sat, _ := chart.Placement(domain.Saturn)
		assert.Equal(t, domain.Libra, sat.Sign)
		assert.InDelta(t, 5.0, sat.DegreeInSign, 1e-9)
	}

	assert.Equal(t, int32(domain.RosterSize), hits.Load(), "second chart must come from the cache")
}

func TestBuildRedisCachesLongitudes(t *testing.T) {
	var hits atomic.Int32
	primary := httptest.NewServer(http.NotFoundHandler())
	primaryURL := primary.URL
	primary.Close()
	fallback := ephemerisServer(t, &hits)

	mr := miniredis.RunT(t)

	cfg := baseConfig()
	cfg.EphemerisURL = primaryURL
	cfg.EphemerisFallbackURL = fallback.URL
	cfg.CacheBackend = config.CacheRedis
	cfg.RedisAddr = mr.Addr()
	cfg.CacheTTL = time.Hour

	c, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	chart, err := services.CalculateChart(context.Background(), request, c.Provider)
	require.NoError(t, err)
	assert.Empty(t, chart.Failed())

	sun, _ := chart.Placement(domain.Sun)
	assert.Equal(t, domain.Aries, sun.Sign)
	assert.Equal(t, int32(domain.RosterSize), hits.Load())
	assert.Len(t, mr.Keys(), domain.RosterSize)
}

func TestBuildFailsOnUnreachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := baseConfig()
	cfg.CacheBackend = config.CacheRedis
	cfg.RedisAddr = addr

	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}

func TestBuildLoadsPlacesFile(t *testing.T) {
	cfg := baseConfig()
	cfg.PlacesFile = "does-not-exist.yaml"

	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}
