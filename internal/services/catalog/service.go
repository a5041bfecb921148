// Package catalog is the in-memory catalog cache. It holds the most recently
// fetched page, the full-catalog snapshot (materialized at most once per
// process) and the latest search result, and it memoizes entity detail so the
// full catalog and searches share fetched records.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/pokedex/internal/services/catalog Service

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex/internal/pkg/sequence"
)

const (
	// DefaultFetchConcurrency bounds in-flight detail requests per batch
	DefaultFetchConcurrency = 32
	// DefaultEntityCacheSize is the number of entity records memoized
	DefaultEntityCacheSize = 2048

	flightIndex       = "index"
	flightFullCatalog = "full-catalog"
	flightEntity      = "entity:"
)

// Service defines the interface for catalog cache operations
type Service interface {
	// GetPage returns one window of the index. The most recent window is
	// served from memory when limit and offset match exactly.
	GetPage(ctx context.Context, input *GetPageInput) (*GetPageOutput, error)

	// GetFullCatalog returns every entity in index order, materializing the
	// snapshot on first use. Items that fail to load are dropped.
	GetFullCatalog(ctx context.Context) (*GetFullCatalogOutput, error)

	// Search matches the term against every indexed name and loads detail
	// for the matches only. An empty term clears the search.
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// GetEntity returns one entity's detail through the memo
	GetEntity(ctx context.Context, input *GetEntityInput) (*GetEntityOutput, error)

	// Snapshot reports the state of the full-catalog cache
	Snapshot() Snapshot

	// LastSearch returns the stored search result, or nil when not searching
	LastSearch() *SearchOutput
}

// Config holds the dependencies for the catalog cache
type Config struct {
	Client           pokeapi.Client
	FetchConcurrency int
	EntityCacheSize  int
	Clock            clock.Clock
	Logger           *slog.Logger
}

// Validate ensures all required dependencies are provided and fills defaults
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
	if c.EntityCacheSize < 0 {
		vb.Field("EntityCacheSize", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.FetchConcurrency == 0 {
		c.FetchConcurrency = DefaultFetchConcurrency
	}
	if c.EntityCacheSize == 0 {
		c.EntityCacheSize = DefaultEntityCacheSize
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}

type service struct {
	client      pokeapi.Client
	concurrency int
	clock       clock.Clock
	logger      *slog.Logger

	memo   *lru.Cache[string, *entities.Entity]
	flight singleflight.Group
	seq    sequence.Sequencer

	mu       sync.Mutex
	page     *entities.Page
	pageKey  [2]int
	index    []entities.NamedResource
	full     []*entities.Entity
	snapshot Snapshot
	search   *SearchOutput
}

// NewService creates a new catalog cache with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	memo, err := lru.New[string, *entities.Entity](cfg.EntityCacheSize)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create entity cache")
	}

	return &service{
		client:      cfg.Client,
		concurrency: cfg.FetchConcurrency,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
		memo:        memo,
	}, nil
}

func (s *service) GetPage(ctx context.Context, input *GetPageInput) (*GetPageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	key := [2]int{input.Limit, input.Offset}

	s.mu.Lock()
	if s.page != nil && s.pageKey == key {
		page := s.page
		s.mu.Unlock()
		return &GetPageOutput{Page: page, Cached: true}, nil
	}
	s.mu.Unlock()

	page, err := s.client.ListEntities(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get page (limit %d, offset %d)", input.Limit, input.Offset)
	}

	s.mu.Lock()
	s.page = page
	s.pageKey = key
	s.mu.Unlock()

	return &GetPageOutput{Page: page}, nil
}

func (s *service) GetFullCatalog(ctx context.Context) (*GetFullCatalogOutput, error) {
	if out, ok := s.readyCatalog(); ok {
		return out, nil
	}

	v, err := s.share(ctx, flightFullCatalog, func(shared context.Context) (any, error) {
		if out, ok := s.readyCatalog(); ok {
			return out, nil
		}
		return s.materialize(shared)
	})
	if err != nil {
		return nil, err
	}
	return v.(*GetFullCatalogOutput), nil
}

func (s *service) readyCatalog() (*GetFullCatalogOutput, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Status != StatusReady {
		return nil, false
	}
	return &GetFullCatalogOutput{Entities: s.full, FetchedAt: s.snapshot.FetchedAt}, true
}

func (s *service) materialize(ctx context.Context) (*GetFullCatalogOutput, error) {
	s.setSnapshot(Snapshot{Status: StatusFetching})
	start := s.clock.Now()

	index, err := s.fullIndex(ctx)
	if err != nil {
		s.setSnapshot(Snapshot{Status: StatusFailed, Err: err})
		return nil, errors.Wrap(err, "failed to materialize full catalog")
	}

	s.logger.Info("Materializing full catalog", "count", len(index), "concurrency", s.concurrency)
	list := s.fetchAll(ctx, index)

	if len(list) == 0 && len(index) > 0 {
		err := errors.Unavailablef("every one of %d catalog entries failed to load", len(index))
		s.setSnapshot(Snapshot{Status: StatusFailed, Err: err})
		return nil, err
	}

	fetchedAt := s.clock.Now()

	s.mu.Lock()
	s.full = list
	s.snapshot = Snapshot{Status: StatusReady, Count: len(list), FetchedAt: fetchedAt}
	s.mu.Unlock()

	s.logger.Info("Full catalog ready",
		"count", len(list),
		"dropped", len(index)-len(list),
		"elapsed", fetchedAt.Sub(start))

	return &GetFullCatalogOutput{Entities: list, FetchedAt: fetchedAt}, nil
}

func (s *service) setSnapshot(snap Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func (s *service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *service) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ticket := s.seq.Next()
	term := strings.ToLower(strings.TrimSpace(input.Term))

	if term == "" {
		s.mu.Lock()
		s.search = nil
		s.mu.Unlock()
		return &SearchOutput{Entities: []*entities.Entity{}}, nil
	}

	index, err := s.fullIndex(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search for %q", term)
	}

	var matches []entities.NamedResource
	for _, ref := range index {
		if strings.Contains(ref.Name, term) {
			matches = append(matches, ref)
		}
	}

	out := &SearchOutput{
		Term:      term,
		Searching: true,
		Entities:  s.fetchAll(ctx, matches),
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(contextError(err), "search for %q abandoned", term)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seq.Current(ticket) {
		s.logger.Debug("Discarding superseded search result", "term", term)
		return out, nil
	}
	s.search = out
	return out, nil
}

func (s *service) LastSearch() *SearchOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *service) GetEntity(ctx context.Context, input *GetEntityInput) (*GetEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	key := strings.ToLower(strings.TrimSpace(input.NameOrID))
	if key == "" {
		return nil, errors.InvalidArgument("name or id is required")
	}

	entity, err := s.entity(ctx, key)
	if err != nil {
		return nil, err
	}
	return &GetEntityOutput{Entity: entity}, nil
}

// entity loads one record through the memo; concurrent misses for the same
// key share a request
func (s *service) entity(ctx context.Context, key string) (*entities.Entity, error) {
	if e, ok := s.memo.Get(key); ok {
		return e, nil
	}

	v, err := s.share(ctx, flightEntity+key, func(shared context.Context) (any, error) {
		e, err := s.client.GetEntity(shared, key)
		if err != nil {
			return nil, err
		}
		s.memo.Add(e.Name, e)
		s.memo.Add(strconv.Itoa(e.ID), e)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entities.Entity), nil
}

// fullIndex returns the complete index, fetching it once
func (s *service) fullIndex(ctx context.Context) ([]entities.NamedResource, error) {
	s.mu.Lock()
	index := s.index
	s.mu.Unlock()
	if index != nil {
		return index, nil
	}

	v, err := s.share(ctx, flightIndex, func(shared context.Context) (any, error) {
		refs, err := s.client.ListAllEntities(shared)
		if err != nil {
			return nil, err
		}
		if refs == nil {
			refs = []entities.NamedResource{}
		}
		s.mu.Lock()
		s.index = refs
		s.mu.Unlock()
		return refs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.NamedResource), nil
}

// share runs fn once for all concurrent callers of key. fn runs detached from
// the first caller's cancellation, since its result is cached for everyone; a
// caller whose context ends stops waiting without affecting the others.
func (s *service) share(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(key, func() (any, error) {
		return fn(shared)
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, contextError(ctx.Err())
	}
}

func contextError(err error) *errors.Error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request deadline exceeded")
	}
	return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
}

// fetchAll loads detail for every ref with bounded concurrency. The result
// keeps the order of refs; failed items are dropped.
func (s *service) fetchAll(ctx context.Context, refs []entities.NamedResource) []*entities.Entity {
	slots := make([]*entities.Entity, len(refs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			e, err := s.entity(ctx, ref.Name)
			if err != nil {
				s.logger.Warn("Dropping entity that failed to load",
					"name", ref.Name,
					"error", err)
				return nil
			}
			slots[i] = e
			return nil
		})
	}
	_ = g.Wait() // nolint:errcheck // workers never return an error

	out := make([]*entities.Entity, 0, len(slots))
	for _, e := range slots {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
