package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheNone     = "none"
	CacheSqlite   = "sqlite"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
)

type Config struct {
	Port     string
	LogLevel string
	LogDev   bool

	EphemerisURL         string
	EphemerisFallbackURL string
	EphemerisAPIKey      string
	EphemerisTimeout     time.Duration
	EphemerisAttempts    int

	CacheBackend string
	DBPath       string
	DatabaseURL  string
	RedisAddr    string
	CacheTTL     time.Duration

	GeocoderURL       string
	GeocoderUserAgent string
	DefaultCountry    string
	PlacesFile        string
}

// Load reads .env when present, then the process environment.
// A missing .env is not an error; a malformed one is.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load config: read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	var errs []error

	ephTimeout, err := GetDuration("EPHEMERIS_TIMEOUT", 10*time.Second)
	errs = append(errs, err)
	ttl, err := GetDuration("CACHE_TTL", 0)
	errs = append(errs, err)
	logDev, err := GetBool("LOG_DEV", false)
	errs = append(errs, err)
	attempts, err := GetInt("EPHEMERIS_MAX_ATTEMPTS", 4)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg := Config{
		Port:     Get("PORT", "8080"),
		LogLevel: Get("LOG_LEVEL", "info"),
		LogDev:   logDev,

		EphemerisURL:         Get("EPHEMERIS_URL", ""),
		EphemerisFallbackURL: Get("EPHEMERIS_FALLBACK_URL", ""),
		EphemerisAPIKey:      Get("EPHEMERIS_API_KEY", ""),
		EphemerisTimeout:     ephTimeout,
		EphemerisAttempts:    attempts,

		CacheBackend: strings.ToLower(Get("CACHE_BACKEND", CacheNone)),
		DBPath:       Get("DB_PATH", "data/natal.db"),
		DatabaseURL:  Get("DATABASE_URL", ""),
		RedisAddr:    Get("REDIS_ADDR", "localhost:6379"),
		CacheTTL:     ttl,

		GeocoderURL:       Get("GEOCODER_URL", ""),
		GeocoderUserAgent: Get("GEOCODER_USER_AGENT", ""),
		DefaultCountry:    Get("DEFAULT_COUNTRY", "Brasil"),
		PlacesFile:        Get("PLACES_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.CacheBackend {
	case CacheNone, CacheSqlite, CacheRedis:
	case CachePostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres cache backend")
		}
	default:
		return fmt.Errorf("config: unknown CACHE_BACKEND %q", c.CacheBackend)
	}

	if c.CacheBackend == CacheSqlite && c.DBPath == "" {
		return errors.New("config: DB_PATH is required for the sqlite cache backend")
	}
	if c.EphemerisFallbackURL != "" && c.EphemerisURL == "" {
		return errors.New("config: EPHEMERIS_FALLBACK_URL set without EPHEMERIS_URL")
	}
	if c.EphemerisTimeout <= 0 {
		return errors.New("config: EPHEMERIS_TIMEOUT must be positive")
	}
	if c.EphemerisAttempts < 1 {
		return errors.New("config: EPHEMERIS_MAX_ATTEMPTS must be at least 1")
	}
	if c.CacheTTL < 0 {
		return errors.New("config: CACHE_TTL must not be negative")
	}
	return nil
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func GetBool(key string, fallback bool) (bool, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}
