// Package compare puts two entities' base stats side by side and backs the
// name picker used to choose them.
package compare

//go:generate mockgen -destination=mock/mock_service.go -package=comparemock github.com/KirkDiggler/pokedex/internal/services/compare Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/services/catalog"
)

// DefaultPickerSize is how many index entries the picker offers
const DefaultPickerSize = 151

// Service defines the interface for stat comparison
type Service interface {
	// Compare loads both entities and compares their stats
	Compare(ctx context.Context, input *CompareInput) (*CompareOutput, error)

	// Candidates returns the picker entries whose name contains the term
	Candidates(ctx context.Context, input *CandidatesInput) (*CandidatesOutput, error)
}

// Config holds the dependencies for the compare service
type Config struct {
	Catalog    catalog.Service
	Client     pokeapi.Client
	PickerSize int
	Logger     *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.PickerSize < 0 {
		vb.Field("PickerSize", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.PickerSize == 0 {
		c.PickerSize = DefaultPickerSize
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}

type service struct {
	catalog    catalog.Service
	client     pokeapi.Client
	pickerSize int
	logger     *slog.Logger

	mu     sync.Mutex
	picker []entities.NamedResource
}

// NewService creates a new compare service
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		catalog:    cfg.Catalog,
		client:     cfg.Client,
		pickerSize: cfg.PickerSize,
		logger:     cfg.Logger,
	}, nil
}

func (s *service) Compare(ctx context.Context, input *CompareInput) (*CompareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	names := [2]string{
		strings.ToLower(strings.TrimSpace(input.Left)),
		strings.ToLower(strings.TrimSpace(input.Right)),
	}
	if names[0] == "" && names[1] == "" {
		return nil, errors.InvalidArgument("at least one entity is required")
	}

	var sides [2]*entities.Entity
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		if name == "" {
			continue
		}
		g.Go(func() error {
			out, err := s.catalog.GetEntity(gctx, &catalog.GetEntityInput{NameOrID: name})
			if err != nil {
				return errors.Wrapf(err, "failed to load %q for comparison", name)
			}
			sides[i] = out.Entity
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("Compared entities", "left", names[0], "right", names[1])
	return &CompareOutput{Comparison: Stats(sides[0], sides[1])}, nil
}

func (s *service) Candidates(ctx context.Context, input *CandidatesInput) (*CandidatesOutput, error) {
	if input == nil {
		input = &CandidatesInput{}
	}

	picker, err := s.pickerList(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(input.Term))
	results := make([]entities.NamedResource, 0, len(picker))
	for _, ref := range picker {
		if term == "" || strings.Contains(strings.ToLower(ref.Name), term) {
			results = append(results, ref)
		}
	}
	return &CandidatesOutput{Results: results}, nil
}

// pickerList fetches the first index window once; failures are not cached
func (s *service) pickerList(ctx context.Context) ([]entities.NamedResource, error) {
	s.mu.Lock()
	picker := s.picker
	s.mu.Unlock()
	if picker != nil {
		return picker, nil
	}

	page, err := s.client.ListEntities(ctx, s.pickerSize, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load picker entries")
	}

	picker = []entities.NamedResource{}
	if page != nil && page.Results != nil {
		picker = page.Results
	}

	s.mu.Lock()
	s.picker = picker
	s.mu.Unlock()
	return picker, nil
}
