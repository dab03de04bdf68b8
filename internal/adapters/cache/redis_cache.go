package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"natal-position-service/internal/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "natal:"

// RedisLongitudeCache stores longitudes as plain float strings with a TTL.
// A zero TTL keeps entries forever.
type RedisLongitudeCache struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

func NewRedisLongitudeCache(client *redis.Client, ttl time.Duration) *RedisLongitudeCache {
	return &RedisLongitudeCache{Client: client, TTL: ttl, Prefix: defaultPrefix}
}

func (r *RedisLongitudeCache) GetLongitude(
	ctx context.Context,
	jd domain.JulianDay,
	code domain.BodyCode,
) (float64, bool, error) {
	if r.Client == nil {
		return 0, false, errors.New("longitude cache: redis client is nil")
	}

	lon, err := r.Client.Get(ctx, longitudeKey(r.Prefix, jd, code)).Float64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get longitude cache: redis get: %w", err)
	}

	return lon, true, nil
}

func (r *RedisLongitudeCache) PutLongitude(
	ctx context.Context,
	jd domain.JulianDay,
	code domain.BodyCode,
	lon float64,
) error {
	if r.Client == nil {
		return errors.New("longitude cache: redis client is nil")
	}

	if err := r.Client.Set(ctx, longitudeKey(r.Prefix, jd, code), lon, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert longitude cache body=%d: redis set: %w", code, err)
	}
	return nil
}

type redisPlace struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// RedisGeocodeCache stores places as small JSON documents.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl, Prefix: defaultPrefix}
}

func (r *RedisGeocodeCache) GetPlace(ctx context.Context, key string) (domain.Place, bool, error) {
	if r.Client == nil {
		return domain.Place{}, false, errors.New("geocode cache: redis client is nil")
	}

	b, err := r.Client.Get(ctx, placeKey(r.Prefix, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Place{}, false, nil
	}
	if err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var rp redisPlace
	if err := json.Unmarshal(b, &rp); err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: decode %q: %w", key, err)
	}

	return domain.Place{
		Name:       rp.Name,
		Coordinate: domain.GeoCoordinate{Lat: rp.Lat, Lon: rp.Lon},
	}, true, nil
}

func (r *RedisGeocodeCache) PutPlace(ctx context.Context, key string, place domain.Place) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	b, err := json.Marshal(redisPlace{Name: place.Name, Lat: place.Coordinate.Lat, Lon: place.Coordinate.Lon})
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode %q: %w", key, err)
	}

	if err := r.Client.Set(ctx, placeKey(r.Prefix, key), b, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: redis set: %w", key, err)
	}
	return nil
}
