// Package config loads process-wide settings from the environment.
//
// Values are parsed once at start-up with caarlos0/env and then handed to
// component constructors; nothing reads the environment after Load returns.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

// Favorites storage backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds all runtime configuration for the catalog core
type Config struct {
	// Remote data source
	APIBaseURL        string        `env:"POKEDEX_API_BASE_URL"        envDefault:"https://pokeapi.co/api/v2/"`
	HTTPTimeout       time.Duration `env:"POKEDEX_HTTP_TIMEOUT"        envDefault:"30s"`
	RequestsPerSecond float64       `env:"POKEDEX_REQUESTS_PER_SECOND" envDefault:"0"`

	// Catalog behaviour
	PageSize         int `env:"POKEDEX_PAGE_SIZE"         envDefault:"20"`
	FetchConcurrency int `env:"POKEDEX_FETCH_CONCURRENCY" envDefault:"32"`
	EntityCacheSize  int `env:"POKEDEX_ENTITY_CACHE_SIZE" envDefault:"2048"`

	// Favorites persistence
	FavoritesBackend string `env:"POKEDEX_FAVORITES_BACKEND" envDefault:"sqlite"`
	FavoritesKey     string `env:"POKEDEX_FAVORITES_KEY"     envDefault:"pokemonFavorites"`
	SQLitePath       string `env:"POKEDEX_SQLITE_PATH"       envDefault:"pokedex.db"`
	RedisAddr        string `env:"POKEDEX_REDIS_ADDR"        envDefault:"localhost:6379"`

	LogLevel string `env:"POKEDEX_LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.APIBaseURL == "" {
		vb.RequiredField("APIBaseURL")
	}
	if c.PageSize <= 0 {
		vb.Field("PageSize", "must be positive")
	}
	if c.FetchConcurrency <= 0 {
		vb.Field("FetchConcurrency", "must be positive")
	}
	if c.RequestsPerSecond < 0 {
		vb.Field("RequestsPerSecond", "must not be negative")
	}
	switch c.FavoritesBackend {
	case BackendSQLite, BackendRedis:
	default:
		vb.Fieldf("FavoritesBackend", "must be %q or %q", BackendSQLite, BackendRedis)
	}

	return vb.Build()
}

// SlogLevel converts LogLevel into a slog.Level, defaulting to Info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
