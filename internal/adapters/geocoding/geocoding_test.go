package geocoding

import (
	"context"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "sao paulo", NormalizeKey("  São   Paulo "))
	assert.Equal(t, "goiania", NormalizeKey("GOIÂNIA"))
	assert.Equal(t, "florianopolis|brasil", QueryKey("Florianópolis", "Brasil"))
}

func TestStaticGeocoder(t *testing.T) {
	g, err := NewStaticGeocoder("")
	require.NoError(t, err)

	ctx := context.Background()

	p, err := g.Geocode(ctx, domain.PlaceQuery{City: "porto alegre"})
	require.NoError(t, err)
	assert.Equal(t, "Porto Alegre, RS", p.Name)
	assert.Equal(t, domain.GeoCoordinate{Lat: -30.0346, Lon: -51.2177}, p.Coordinate)

	p, err = g.Geocode(ctx, domain.PlaceQuery{City: "Sao Luis, MA", Country: "brasil"})
	require.NoError(t, err)
	assert.Equal(t, "São Luís, MA", p.Name)

	_, err = g.Geocode(ctx, domain.PlaceQuery{City: "Porto Alegre", Country: "Portugal"})
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)

	assert.Len(t, g.Suggestions(), 23)
}

func TestStaticGeocoderExtraPlacesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.yaml")
	yml := "- name: Lisboa\n  country: Portugal\n  lat: 38.7223\n  lon: -9.1393\n- name: Pelotas, RS\n  lat: -31.7654\n  lon: -52.3376\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	extra, err := LoadStaticPlaces(path)
	require.NoError(t, err)
	require.Len(t, extra, 2)

	g, err := NewStaticGeocoder(DefaultCountry, extra...)
	require.NoError(t, err)

	p, err := g.Geocode(context.Background(), domain.PlaceQuery{City: "lisboa", Country: "portugal"})
	require.NoError(t, err)
	assert.Equal(t, 38.7223, p.Coordinate.Lat)

	p, err = g.Geocode(context.Background(), domain.PlaceQuery{City: "Pelotas"})
	require.NoError(t, err)
	assert.Equal(t, "Pelotas, RS", p.Name)
}

func TestStaticGeocoderRejectsBadPlace(t *testing.T) {
	_, err := NewStaticGeocoder("", StaticPlace{Name: "Nowhere", Lat: 120})
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
}

func TestNominatimGeocoder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "astro-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "Pelotas, Brasil", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `[{"lat": "-31.7654123", "lon": "-52.3375998", "display_name": "Pelotas, Rio Grande do Sul, Brasil"}]`)
	}))
	defer srv.Close()

	g, err := NewNominatimGeocoder(srv.URL, "astro-test", time.Second)
	require.NoError(t, err)

	p, err := g.Geocode(context.Background(), domain.PlaceQuery{City: "Pelotas", Country: "Brasil"})
	require.NoError(t, err)
	assert.Equal(t, "Pelotas, Rio Grande do Sul, Brasil", p.Name)
	assert.Equal(t, domain.GeoCoordinate{Lat: -31.7654, Lon: -52.3376}, p.Coordinate)
}

func TestNominatimGeocoderNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	g, err := NewNominatimGeocoder(srv.URL, "astro-test", time.Second)
	require.NoError(t, err)

	_, err = g.Geocode(context.Background(), domain.PlaceQuery{City: "Atlantis"})
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestNewNominatimGeocoderRequiresUserAgent(t *testing.T) {
	_, err := NewNominatimGeocoder("", " ", time.Second)
	assert.Error(t, err)
}

type stubGeocoder struct {
	place domain.Place
	err   error
	calls int
}

func (s *stubGeocoder) Geocode(ctx context.Context, q domain.PlaceQuery) (domain.Place, error) {
	s.calls++
	return s.place, s.err
}

type mapCache map[string]domain.Place

func (m mapCache) GetPlace(ctx context.Context, key string) (domain.Place, bool, error) {
	p, ok := m[key]
	return p, ok, nil
}

func (m mapCache) PutPlace(ctx context.Context, key string, p domain.Place) error {
	m[key] = p
	return nil
}

func TestChainGeocoder(t *testing.T) {
	miss := &stubGeocoder{err: domain.ErrPlaceNotFound}
	hit := &stubGeocoder{place: domain.Place{Name: "Pelotas"}}

	chain, err := NewChainGeocoder(miss, nil, hit)
	require.NoError(t, err)

	p, err := chain.Geocode(context.Background(), domain.PlaceQuery{City: "Pelotas"})
	require.NoError(t, err)
	assert.Equal(t, "Pelotas", p.Name)
	assert.Equal(t, 1, miss.calls)
}

func TestChainGeocoderKeepsFailures(t *testing.T) {
	errDown := errors.New("nominatim down")
	chain, err := NewChainGeocoder(&stubGeocoder{err: domain.ErrPlaceNotFound}, &stubGeocoder{err: errDown})
	require.NoError(t, err)

	_, err = chain.Geocode(context.Background(), domain.PlaceQuery{City: "X"})
	assert.ErrorIs(t, err, errDown)
	assert.False(t, errors.Is(err, domain.ErrPlaceNotFound))

	chain, err = NewChainGeocoder(&stubGeocoder{err: domain.ErrPlaceNotFound})
	require.NoError(t, err)
	_, err = chain.Geocode(context.Background(), domain.PlaceQuery{City: "X"})
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestCachedGeocoder(t *testing.T) {
	next := &stubGeocoder{place: domain.Place{Name: "São Paulo, SP"}}
	cache := mapCache{}

	g, err := NewCachedGeocoder(next, cache, "")
	require.NoError(t, err)

	for _, city := range []string{"São Paulo", "sao  paulo", "SAO PAULO"} {
		p, err := g.Geocode(context.Background(), domain.PlaceQuery{City: city})
		require.NoError(t, err)
		assert.Equal(t, "São Paulo, SP", p.Name)
	}

	assert.Equal(t, 1, next.calls)
	assert.Contains(t, cache, "sao paulo|brasil")
}
