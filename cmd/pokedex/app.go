package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/config"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/browse"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/evolution"
	"github.com/KirkDiggler/pokedex/internal/redis"
	favoritesrepo "github.com/KirkDiggler/pokedex/internal/repositories/favorites"
	"github.com/KirkDiggler/pokedex/internal/services/catalog"
	"github.com/KirkDiggler/pokedex/internal/services/compare"
	"github.com/KirkDiggler/pokedex/internal/services/favorites"
	"github.com/KirkDiggler/pokedex/internal/services/regions"
)

// app is the composed catalog core used by the commands
type app struct {
	catalog   catalog.Service
	browse    browse.Service
	evolution evolution.Service
	favorites favorites.Service
	regions   regions.Service
	compare   compare.Service

	logger   *slog.Logger
	gatherer prometheus.Gatherer
	closers  []func() error
}

type appFactory func(ctx context.Context) (*app, error)

// Close reports gateway traffic and releases the favorites store
func (a *app) Close() error {
	if a.gatherer != nil {
		logGatewayStats(a.logger, a.gatherer)
	}

	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// buildApp wires every component from the environment configuration
func buildApp(_ context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	registry := prometheus.NewRegistry()
	metrics, err := pokeapi.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:           cfg.APIBaseURL,
		HTTPTimeout:       cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Metrics:           metrics,
		Logger:            logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway client: %w", err)
	}

	catalogService, err := catalog.NewService(&catalog.Config{
		Client:           client,
		FetchConcurrency: cfg.FetchConcurrency,
		EntityCacheSize:  cfg.EntityCacheSize,
		Logger:           logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	browseOrchestrator, err := browse.NewOrchestrator(&browse.Config{
		Catalog:  catalogService,
		PageSize: cfg.PageSize,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browse orchestrator: %w", err)
	}

	evolutionOrchestrator, err := evolution.NewOrchestrator(&evolution.Config{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create evolution orchestrator: %w", err)
	}

	regionsService, err := regions.NewService(&regions.Config{
		Client: client,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create regions service: %w", err)
	}

	compareService, err := compare.NewService(&compare.Config{
		Catalog: catalogService,
		Client:  client,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create compare service: %w", err)
	}

	repo, closeRepo, err := openFavorites(cfg)
	if err != nil {
		return nil, err
	}

	favoritesService, err := favorites.NewService(&favorites.Config{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		_ = closeRepo()
		return nil, fmt.Errorf("failed to create favorites service: %w", err)
	}

	return &app{
		catalog:   catalogService,
		browse:    browseOrchestrator,
		evolution: evolutionOrchestrator,
		favorites: favoritesService,
		regions:   regionsService,
		compare:   compareService,
		logger:    logger,
		gatherer:  registry,
		closers:   []func() error{closeRepo},
	}, nil
}

// openFavorites opens the configured favorites backend
func openFavorites(cfg *config.Config) (favoritesrepo.Repository, func() error, error) {
	switch cfg.FavoritesBackend {
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		repo, err := favoritesrepo.NewRedis(&favoritesrepo.RedisConfig{
			Client: client,
			Key:    cfg.FavoritesKey,
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create favorites repository: %w", err)
		}
		return repo, client.Close, nil
	default:
		store, err := favoritesrepo.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open favorites store: %w", err)
		}
		repo, err := favoritesrepo.NewSQLite(&favoritesrepo.SQLiteConfig{
			Store: store,
			Key:   cfg.FavoritesKey,
		})
		if err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("failed to create favorites repository: %w", err)
		}
		return repo, store.Close, nil
	}
}

// logGatewayStats logs the request counters gathered during the run
func logGatewayStats(logger *slog.Logger, gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		logger.Warn("failed to gather metrics", "error", err)
		return
	}

	for _, mf := range families {
		if mf.GetName() != "pokedex_gateway_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			attrs := []any{"count", m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			logger.Debug("gateway requests", attrs...)
		}
	}
}
