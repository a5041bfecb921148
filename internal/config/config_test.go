package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex/internal/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal("https://pokeapi.co/api/v2/", cfg.APIBaseURL)
	s.Equal(30*time.Second, cfg.HTTPTimeout)
	s.Equal(20, cfg.PageSize)
	s.Equal(32, cfg.FetchConcurrency)
	s.Equal(config.BackendSQLite, cfg.FavoritesBackend)
	s.Equal("pokemonFavorites", cfg.FavoritesKey)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestLoadFromEnvironment() {
	s.T().Setenv("POKEDEX_PAGE_SIZE", "50")
	s.T().Setenv("POKEDEX_FETCH_CONCURRENCY", "8")
	s.T().Setenv("POKEDEX_FAVORITES_BACKEND", "redis")
	s.T().Setenv("POKEDEX_HTTP_TIMEOUT", "5s")
	s.T().Setenv("POKEDEX_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(50, cfg.PageSize)
	s.Equal(8, cfg.FetchConcurrency)
	s.Equal(config.BackendRedis, cfg.FavoritesBackend)
	s.Equal(5*time.Second, cfg.HTTPTimeout)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestLoadRejectsInvalidValues() {
	testCases := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{name: "zero page size", key: "POKEDEX_PAGE_SIZE", value: "0", errMsg: "PageSize"},
		{name: "negative concurrency", key: "POKEDEX_FETCH_CONCURRENCY", value: "-1", errMsg: "FetchConcurrency"},
		{name: "unknown backend", key: "POKEDEX_FAVORITES_BACKEND", value: "localstorage", errMsg: "FavoritesBackend"},
		{name: "unparsable number", key: "POKEDEX_PAGE_SIZE", value: "twenty", errMsg: "parse"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			cfg, err := config.Load()
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(cfg)
		})
	}
}
