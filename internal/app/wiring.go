// Package app assembles adapters from configuration. It is shared by the
// server and the CLI so both resolve charts through the same stack.
package app

import (
	"context"
	"errors"
	"fmt"
	"natal-position-service/internal/adapters/cache"
	"natal-position-service/internal/adapters/ephemeris"
	"natal-position-service/internal/adapters/geocoding"
	"natal-position-service/internal/config"
	"natal-position-service/internal/platform/db"
	"natal-position-service/internal/ports"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Components are the wired ports plus whatever must be closed on shutdown.
type Components struct {
	Provider ports.EphemerisProvider
	Geocoder ports.Geocoder
	Places   *geocoding.StaticGeocoder

	closers []func() error
}

// Close releases database and redis handles in reverse order of acquisition.
func (c *Components) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

type caches struct {
	longitudes ports.LongitudeCache
	places     ports.GeocodeCache
}

// Build wires the ephemeris chain, the geocoder chain and the configured
// cache backend. A missing EPHEMERIS_URL leaves Provider nil, which yields
// fully degraded charts rather than a startup failure.
func Build(ctx context.Context, cfg config.Config) (*Components, error) {
	c := &Components{}

	cs, err := c.openCaches(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.Provider, err = buildProvider(cfg, cs.longitudes)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.Places, c.Geocoder, err = buildGeocoder(cfg, cs.places)
	if err != nil {
		c.Close()
		return nil, err
	}

	return c, nil
}

func (c *Components) openCaches(ctx context.Context, cfg config.Config) (caches, error) {
	switch cfg.CacheBackend {
	case config.CacheSqlite:
		conn, err := db.OpenSqlite(ctx, cfg.DBPath)
		if err != nil {
			return caches{}, fmt.Errorf("build: %w", err)
		}
		c.closers = append(c.closers, conn.Close)
		if err := cache.InitSchema(ctx, conn); err != nil {
			return caches{}, fmt.Errorf("build: %w", err)
		}
		return caches{
			longitudes: cache.NewSqliteLongitudeCache(conn),
			places:     cache.NewSqliteGeocodeCache(conn),
		}, nil

	case config.CachePostgres:
		conn, err := db.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return caches{}, fmt.Errorf("build: %w", err)
		}
		c.closers = append(c.closers, conn.Close)
		if err := cache.InitSchema(ctx, conn); err != nil {
			return caches{}, fmt.Errorf("build: %w", err)
		}
		return caches{
			longitudes: cache.NewSQLLongitudeCache(conn),
			places:     cache.NewSQLGeocodeCache(conn),
		}, nil

	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		c.closers = append(c.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return caches{}, fmt.Errorf("build: ping redis %q: %w", cfg.RedisAddr, err)
		}
		return caches{
			longitudes: cache.NewRedisLongitudeCache(client, cfg.CacheTTL),
			places:     cache.NewRedisGeocodeCache(client, cfg.CacheTTL),
		}, nil

	default:
		return caches{}, nil
	}
}

func buildProvider(cfg config.Config, lc ports.LongitudeCache) (ports.EphemerisProvider, error) {
	if cfg.EphemerisURL == "" {
		zap.L().Warn("EPHEMERIS_URL is not set; charts will be degraded")
		return nil, nil
	}

	primary, err := ephemeris.NewHTTPProvider(cfg.EphemerisURL, cfg.EphemerisAPIKey, cfg.EphemerisTimeout)
	if err != nil {
		return nil, fmt.Errorf("build: primary ephemeris: %w", err)
	}
	primary.WithMaxAttempts(cfg.EphemerisAttempts)

	var provider ports.EphemerisProvider = primary
	if cfg.EphemerisFallbackURL != "" {
		fallback, err := ephemeris.NewHTTPProvider(cfg.EphemerisFallbackURL, cfg.EphemerisAPIKey, cfg.EphemerisTimeout)
		if err != nil {
			return nil, fmt.Errorf("build: fallback ephemeris: %w", err)
		}
		fallback.WithMaxAttempts(cfg.EphemerisAttempts)

		chain, err := ephemeris.NewChainProvider(primary, fallback)
		if err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
		provider = chain
	}

	if lc == nil {
		return provider, nil
	}
	cached, err := ephemeris.NewCachedProvider(provider, lc)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	return cached, nil
}

// buildGeocoder puts the offline table first. Nominatim is only consulted
// when a user agent is configured, as its usage policy demands.
func buildGeocoder(cfg config.Config, gc ports.GeocodeCache) (*geocoding.StaticGeocoder, ports.Geocoder, error) {
	var extra []geocoding.StaticPlace
	if cfg.PlacesFile != "" {
		loaded, err := geocoding.LoadStaticPlaces(cfg.PlacesFile)
		if err != nil {
			return nil, nil, fmt.Errorf("build: %w", err)
		}
		extra = loaded
	}

	static, err := geocoding.NewStaticGeocoder(cfg.DefaultCountry, extra...)
	if err != nil {
		return nil, nil, fmt.Errorf("build: %w", err)
	}

	if cfg.GeocoderUserAgent == "" {
		return static, static, nil
	}

	nominatim, err := geocoding.NewNominatimGeocoder(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.EphemerisTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("build: %w", err)
	}

	var remote ports.Geocoder = nominatim
	if gc != nil {
		cached, err := geocoding.NewCachedGeocoder(nominatim, gc, cfg.DefaultCountry)
		if err != nil {
			return nil, nil, fmt.Errorf("build: %w", err)
		}
		remote = cached
	}

	chain, err := geocoding.NewChainGeocoder(static, remote)
	if err != nil {
		return nil, nil, fmt.Errorf("build: %w", err)
	}
	return static, chain, nil
}
