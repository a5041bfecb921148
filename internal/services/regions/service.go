// Package regions browses regions, their locations and location areas.
// Region detail is cached per name for the life of the process.
package regions

//go:generate mockgen -destination=mock/mock_service.go -package=regionsmock github.com/KirkDiggler/pokedex/internal/services/regions Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
)

// DefaultFetchConcurrency bounds concurrent region detail requests
const DefaultFetchConcurrency = 8

// Service defines the interface for region and location browsing
type Service interface {
	// ListRegions returns the region index, optionally warming the detail cache
	ListRegions(ctx context.Context, input *ListRegionsInput) (*ListRegionsOutput, error)

	// GetRegion returns one region, fetching it at most once
	GetRegion(ctx context.Context, input *GetRegionInput) (*GetRegionOutput, error)

	// ListLocationsByRegion builds a single page from a region's locations
	ListLocationsByRegion(ctx context.Context, input *ListLocationsByRegionInput) (*ListLocationsOutput, error)

	// ListLocations returns one window of the global location index
	ListLocations(ctx context.Context, input *ListLocationsInput) (*ListLocationsOutput, error)

	// GetLocation returns one location
	GetLocation(ctx context.Context, input *GetLocationInput) (*GetLocationOutput, error)

	// GetLocationArea returns one location area with its encounters
	GetLocationArea(ctx context.Context, input *GetLocationAreaInput) (*GetLocationAreaOutput, error)
}

// Config holds the dependencies for the regions service
type Config struct {
	Client           pokeapi.Client
	FetchConcurrency int
	Logger           *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.FetchConcurrency < 0 {
		vb.Field("FetchConcurrency", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.FetchConcurrency == 0 {
		c.FetchConcurrency = DefaultFetchConcurrency
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}

type service struct {
	client      pokeapi.Client
	concurrency int
	logger      *slog.Logger
	flight      singleflight.Group

	mu      sync.Mutex
	regions map[string]*entities.Region
}

// NewService creates a new regions service
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		client:      cfg.Client,
		concurrency: cfg.FetchConcurrency,
		logger:      cfg.Logger,
		regions:     make(map[string]*entities.Region),
	}, nil
}

func (s *service) ListRegions(ctx context.Context, input *ListRegionsInput) (*ListRegionsOutput, error) {
	if input == nil {
		input = &ListRegionsInput{}
	}

	page, err := s.client.ListRegions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	out := &ListRegionsOutput{Page: page}
	if !input.WithDetails {
		return out, nil
	}

	out.Details = make([]*entities.Region, len(page.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, ref := range page.Results {
		i, ref := i, ref
		g.Go(func() error {
			region, _, err := s.region(gctx, ref.Name)
			if err != nil {
				s.logger.Warn("failed to load region detail",
					"region", ref.Name,
					"error", err)
				return nil
			}
			out.Details[i] = region
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

func (s *service) GetRegion(ctx context.Context, input *GetRegionInput) (*GetRegionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	region, cached, err := s.region(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return &GetRegionOutput{Region: region, Cached: cached}, nil
}

func (s *service) ListLocationsByRegion(ctx context.Context, input *ListLocationsByRegionInput) (*ListLocationsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	region, _, err := s.region(ctx, input.Region)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch locations for region")
	}

	results := make([]entities.NamedResource, len(region.Locations))
	copy(results, region.Locations)
	return &ListLocationsOutput{
		Page: &entities.Page{Count: len(results), Results: results},
	}, nil
}

func (s *service) ListLocations(ctx context.Context, input *ListLocationsInput) (*ListLocationsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	page, err := s.client.ListLocations(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}
	return &ListLocationsOutput{Page: page}, nil
}

func (s *service) GetLocation(ctx context.Context, input *GetLocationInput) (*GetLocationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	location, err := s.client.GetLocation(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get location %s", input.Name)
	}
	return &GetLocationOutput{Location: location}, nil
}

func (s *service) GetLocationArea(ctx context.Context, input *GetLocationAreaInput) (*GetLocationAreaOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	area, err := s.client.GetLocationArea(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get location area %s", input.Name)
	}
	return &GetLocationAreaOutput{Area: area}, nil
}

// region returns the cached detail for name or fetches it, sharing one
// request between concurrent callers. Failures are not cached.
func (s *service) region(ctx context.Context, name string) (*entities.Region, bool, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, false, errors.InvalidArgument("region name is required")
	}

	s.mu.Lock()
	region, ok := s.regions[key]
	s.mu.Unlock()
	if ok {
		return region, true, nil
	}

	// the fetch is shared and cached, so it outlives any one caller's context
	shared := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(key, func() (any, error) {
		s.mu.Lock()
		cached, ok := s.regions[key]
		s.mu.Unlock()
		if ok {
			return cached, nil
		}

		region, err := s.client.GetRegion(shared, key)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.regions[key] = region
		s.mu.Unlock()
		return region, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, false, errors.Wrapf(res.Err, "failed to get region %s", key)
		}
		return res.Val.(*entities.Region), false, nil
	case <-ctx.Done():
		return nil, false, errors.WrapWithCodef(ctx.Err(), errors.CodeCanceled, "stopped waiting for region %s", key)
	}
}
