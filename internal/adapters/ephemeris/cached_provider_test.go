package ephemeris

import (
	"context"
	"errors"
	"natal-position-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	data    map[domain.BodyCode]float64
	readErr error
	puts    int
}

func (m *memoryCache) GetLongitude(ctx context.Context, jd domain.JulianDay, code domain.BodyCode) (float64, bool, error) {
	if m.readErr != nil {
		return 0, false, m.readErr
	}
	v, ok := m.data[code]
	return v, ok, nil
}

func (m *memoryCache) PutLongitude(ctx context.Context, jd domain.JulianDay, code domain.BodyCode, lon float64) error {
	m.puts++
	m.data[code] = lon
	return nil
}

func TestCachedProviderServesFromCache(t *testing.T) {
	next := NewMockProvider(map[domain.BodyCode]float64{domain.Mars.Code(): 15})
	cache := &memoryCache{data: map[domain.BodyCode]float64{}}

	p, err := NewCachedProvider(next, cache)
	require.NoError(t, err)

	for n := 0; n < 3; n++ {
		lon, err := p.EclipticLongitude(context.Background(), 2451545.0, domain.Mars.Code())
		require.NoError(t, err)
		assert.Equal(t, 15.0, lon)
	}

	assert.Len(t, next.Calls(), 1)
	assert.Equal(t, 1, cache.puts)
}

func TestCachedProviderReadFailureFallsThrough(t *testing.T) {
	next := NewMockProvider(map[domain.BodyCode]float64{0: 42})
	cache := &memoryCache{data: map[domain.BodyCode]float64{}, readErr: errors.New("redis down")}

	p, err := NewCachedProvider(next, cache)
	require.NoError(t, err)

	lon, err := p.EclipticLongitude(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, lon)
}

func TestCachedProviderDoesNotStoreFailures(t *testing.T) {
	next := NewMockProvider(nil)
	cache := &memoryCache{data: map[domain.BodyCode]float64{}}

	p, err := NewCachedProvider(next, cache)
	require.NoError(t, err)

	_, err = p.EclipticLongitude(context.Background(), 0, 3)
	assert.Error(t, err)
	assert.Zero(t, cache.puts)
}
