// Package favorites is the favorites register: an insertion-ordered set of
// entity ids that is written through to durable storage after every change.
package favorites

//go:generate mockgen -destination=mock/mock_service.go -package=favoritesmock github.com/KirkDiggler/pokedex/internal/services/favorites Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/pokedex/internal/errors"
	favoritesrepo "github.com/KirkDiggler/pokedex/internal/repositories/favorites"
)

// Service defines the interface for the favorites register
type Service interface {
	// Load replaces the in-memory set with the persisted one
	Load(ctx context.Context) (*ListOutput, error)

	// Add appends the id unless it is already present
	Add(ctx context.Context, input *AddInput) (*ListOutput, error)

	// Remove drops the id; removing an absent id is a no-op
	Remove(ctx context.Context, input *RemoveInput) (*ListOutput, error)

	// Toggle adds the id when absent and removes it when present
	Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error)

	// IsFavorite reports membership
	IsFavorite(id int) bool

	// List returns the ids in insertion order
	List() []int
}

// AddInput defines the request for adding a favorite
type AddInput struct {
	ID int
}

// RemoveInput defines the request for removing a favorite
type RemoveInput struct {
	ID int
}

// ToggleInput defines the request for toggling a favorite
type ToggleInput struct {
	ID int
}

// ListOutput holds the ids after an operation, in insertion order
type ListOutput struct {
	IDs []int
}

// ToggleOutput reports the membership after a toggle
type ToggleOutput struct {
	IsFavorite bool
	IDs        []int
}

// Config holds the dependencies for the favorites register
type Config struct {
	Repository favoritesrepo.Repository
	Logger     *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}

type service struct {
	repo   favoritesrepo.Repository
	logger *slog.Logger

	// mu is held across persistence so writes land in mutation order
	mu    sync.Mutex
	ids   []int
	index map[int]struct{}
}

// NewService creates an empty favorites register; call Load to restore the
// persisted set
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
		ids:    []int{},
		index:  map[int]struct{}{},
	}, nil
}

func validateID(id int) error {
	if id <= 0 {
		return errors.InvalidArgumentf("entity id must be positive, got %d", id)
	}
	return nil
}

func (s *service) Load(ctx context.Context) (*ListOutput, error) {
	out, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// stored duplicates or invalid ids are dropped, first occurrence wins
	s.ids = make([]int, 0, len(out.IDs))
	s.index = make(map[int]struct{}, len(out.IDs))
	for _, id := range out.IDs {
		if _, seen := s.index[id]; seen || id <= 0 {
			continue
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
	}

	s.logger.Debug("Loaded favorites", "count", len(s.ids))
	return &ListOutput{IDs: s.snapshot()}, nil
}

func (s *service) Add(ctx context.Context, input *AddInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.add(ctx, input.ID); err != nil {
		return nil, err
	}
	return &ListOutput{IDs: s.snapshot()}, nil
}

func (s *service) Remove(ctx context.Context, input *RemoveInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.remove(ctx, input.ID); err != nil {
		return nil, err
	}
	return &ListOutput{IDs: s.snapshot()}, nil
}

func (s *service) Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, present := s.index[input.ID]
	change := s.add
	if present {
		change = s.remove
	}
	if err := change(ctx, input.ID); err != nil {
		return nil, err
	}
	return &ToggleOutput{IsFavorite: !present, IDs: s.snapshot()}, nil
}

// add and remove apply one change and persist it. Callers hold the lock.
func (s *service) add(ctx context.Context, id int) error {
	if _, ok := s.index[id]; ok {
		return nil
	}

	next := append(s.snapshot(), id)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.ids = next
	s.index[id] = struct{}{}
	return nil
}

func (s *service) remove(ctx context.Context, id int) error {
	if _, ok := s.index[id]; !ok {
		return nil
	}

	next := make([]int, 0, len(s.ids))
	for _, existing := range s.ids {
		if existing != id {
			next = append(next, existing)
		}
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.ids = next
	delete(s.index, id)
	return nil
}

func (s *service) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.index[id]
	return ok
}

func (s *service) List() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// persist writes the full set; the in-memory set only changes on success.
// Callers hold the lock.
func (s *service) persist(ctx context.Context, ids []int) error {
	if _, err := s.repo.Save(ctx, favoritesrepo.SaveInput{IDs: ids}); err != nil {
		s.logger.Error("Failed to persist favorites", "count", len(ids), "error", err)
		return errors.Wrap(err, "failed to persist favorites")
	}
	return nil
}

// snapshot copies the ids; callers hold the lock
func (s *service) snapshot() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}
