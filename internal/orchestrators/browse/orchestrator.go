// Package browse implements the view-mode coordinator. It decides from the
// page number, category filter and search text which of the paginated,
// category-filtered and searched modes is authoritative, issues the matching
// catalog fetch and exposes a single displayed result set.
package browse

//go:generate mockgen -destination=mock/mock_service.go -package=browsemock github.com/KirkDiggler/pokedex/internal/orchestrators/browse Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/pkg/sequence"
	"github.com/KirkDiggler/pokedex/internal/services/catalog"
)

// DefaultPageSize is the fixed number of entries per page
const DefaultPageSize = 20

// Service defines the interface for the view-mode coordinator
type Service interface {
	// Load fetches the data for the current mode and page
	Load(ctx context.Context) (*State, error)

	// SetSearch switches to searched mode, or falls back to the category or
	// paginated mode when the term is empty
	SetSearch(ctx context.Context, input *SetSearchInput) (*State, error)

	// SetCategory selects or clears the category filter. Not allowed while
	// searching.
	SetCategory(ctx context.Context, input *SetCategoryInput) (*State, error)

	// NextPage advances one page; a no-op when there is no further data
	NextPage(ctx context.Context) (*State, error)

	// PreviousPage goes back one page; a no-op on the first page
	PreviousPage(ctx context.Context) (*State, error)

	// GoToPage jumps to the given page
	GoToPage(ctx context.Context, input *GoToPageInput) (*State, error)

	// Retry re-issues the fetch for the current mode and parameters
	Retry(ctx context.Context) (*State, error)

	// State returns the current snapshot
	State() *State
}

// Config holds the dependencies for the browse orchestrator
type Config struct {
	Catalog  catalog.Service
	PageSize int
	Logger   *slog.Logger
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
	if c.PageSize < 0 {
		vb.Field("PageSize", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}

type orchestrator struct {
	catalog  catalog.Service
	pageSize int
	logger   *slog.Logger
	seq      sequence.Sequencer

	mu       sync.Mutex
	state    State
	list     []*entities.Entity
	listMode Mode
	hasList  bool
}

// NewOrchestrator creates a new browse orchestrator in paginated mode on page 1
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog:  cfg.Catalog,
		pageSize: cfg.PageSize,
		logger:   cfg.Logger,
		state: State{
			Mode:  ModePaginated,
			Page:  1,
			Items: []Item{},
		},
	}, nil
}

// request captures the parameters of one fetch
type request struct {
	ticket   sequence.Ticket
	mode     Mode
	page     int
	category string
	term     string
}

func (o *orchestrator) State() *State {
	o.mu.Lock()
	defer o.mu.Unlock()

	snapshot := o.state
	return &snapshot
}

func (o *orchestrator) Load(ctx context.Context) (*State, error) {
	req, _ := o.begin(nil)
	return o.fetch(ctx, req)
}

func (o *orchestrator) Retry(ctx context.Context) (*State, error) {
	return o.Load(ctx)
}

func (o *orchestrator) SetSearch(ctx context.Context, input *SetSearchInput) (*State, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	term := strings.TrimSpace(input.Term)

	req, _ := o.begin(func(st *State) error {
		st.SearchTerm = term
		st.Page = 1
		return nil
	})

	if term == "" {
		// clears the stored search in the catalog before falling back
		if _, err := o.catalog.Search(ctx, &catalog.SearchInput{}); err != nil {
			return o.fail(req, err)
		}
	}
	return o.fetch(ctx, req)
}

func (o *orchestrator) SetCategory(ctx context.Context, input *SetCategoryInput) (*State, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category != "" && !entities.IsCategory(category) {
		return nil, errors.InvalidArgumentf("unknown category %q", input.Category)
	}

	req, err := o.begin(func(st *State) error {
		if st.SearchTerm != "" {
			return errors.FailedPrecondition("category filter is disabled while searching")
		}
		st.Category = category
		st.Page = 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o.fetch(ctx, req)
}

func (o *orchestrator) NextPage(ctx context.Context) (*State, error) {
	o.mu.Lock()
	if !o.state.HasNext || o.state.Loading {
		snapshot := o.state
		o.mu.Unlock()
		return &snapshot, nil
	}
	page := o.state.Page + 1
	o.mu.Unlock()

	return o.GoToPage(ctx, &GoToPageInput{Page: page})
}

func (o *orchestrator) PreviousPage(ctx context.Context) (*State, error) {
	o.mu.Lock()
	if o.state.Page <= 1 || o.state.Loading {
		snapshot := o.state
		o.mu.Unlock()
		return &snapshot, nil
	}
	page := o.state.Page - 1
	o.mu.Unlock()

	return o.GoToPage(ctx, &GoToPageInput{Page: page})
}

func (o *orchestrator) GoToPage(ctx context.Context, input *GoToPageInput) (*State, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Page < 1 {
		return nil, errors.InvalidArgumentf("page must be at least 1, got %d", input.Page)
	}

	o.mu.Lock()
	if last := o.state.PageCount; !o.state.Loading && last > 0 && input.Page > last {
		o.mu.Unlock()
		return nil, errors.InvalidArgumentf("page %d is past the last page %d", input.Page, last)
	}
	if o.state.Mode != ModePaginated && (o.state.Loading || (o.hasList && o.listMode == o.state.Mode)) {
		// list modes page through the materialized list without a fetch; a
		// pending fetch slices at the new page when it lands
		o.state.Page = input.Page
		if !o.state.Loading {
			o.applyList()
		}
		snapshot := o.state
		o.mu.Unlock()
		return &snapshot, nil
	}
	o.mu.Unlock()

	req, _ := o.begin(func(st *State) error {
		st.Page = input.Page
		return nil
	})
	return o.fetch(ctx, req)
}

// begin applies an intent to the state, derives the mode and issues a ticket
// that supersedes every in-flight request. The intent is checked and applied
// under the same lock; a rejected intent leaves the state untouched.
func (o *orchestrator) begin(mutate func(*State) error) (request, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	prevMode := o.state.Mode
	if mutate != nil {
		next := o.state
		if err := mutate(&next); err != nil {
			return request{}, err
		}
		o.state = next
	}
	o.state.Mode = deriveMode(o.state.SearchTerm, o.state.Category)
	if o.state.Mode != prevMode {
		o.state.Page = 1
	}
	o.state.Loading = true
	o.state.Err = nil

	return request{
		ticket:   o.seq.Next(),
		mode:     o.state.Mode,
		page:     o.state.Page,
		category: o.state.Category,
		term:     o.state.SearchTerm,
	}, nil
}

func deriveMode(term, category string) Mode {
	switch {
	case term != "":
		return ModeSearched
	case category != "":
		return ModeCategoryFiltered
	default:
		return ModePaginated
	}
}

func (o *orchestrator) fetch(ctx context.Context, req request) (*State, error) {
	switch req.mode {
	case ModeSearched:
		out, err := o.catalog.Search(ctx, &catalog.SearchInput{Term: req.term})
		if err != nil {
			return o.fail(req, err)
		}
		return o.completeList(req, out.Entities)

	case ModeCategoryFiltered:
		out, err := o.catalog.GetFullCatalog(ctx)
		if err != nil {
			return o.fail(req, err)
		}
		filtered := make([]*entities.Entity, 0)
		for _, e := range out.Entities {
			if e.HasType(req.category) {
				filtered = append(filtered, e)
			}
		}
		return o.completeList(req, filtered)

	default:
		out, err := o.catalog.GetPage(ctx, &catalog.GetPageInput{
			Limit:  o.pageSize,
			Offset: (req.page - 1) * o.pageSize,
		})
		if err != nil {
			return o.fail(req, err)
		}
		return o.completePage(req, out.Page)
	}
}

// stale reports whether req was superseded; callers hold the lock
func (o *orchestrator) stale(req request) bool {
	if o.seq.Current(req.ticket) {
		return false
	}
	o.logger.Debug("Discarding superseded browse result",
		"mode", req.mode.String(),
		"page", req.page)
	return true
}

func (o *orchestrator) completePage(req request, page *entities.Page) (*State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.stale(req) {
		o.hasList = false
		o.list = nil

		o.state.Loading = false
		o.state.Total = page.Count
		o.state.PageCount = pageCount(page.Count, o.pageSize)
		o.state.Items = make([]Item, len(page.Results))
		for i, ref := range page.Results {
			o.state.Items[i] = Item{ID: ref.ID(), Name: ref.Name}
		}
		o.state.Entities = nil
		o.state.HasNext = page.HasNext()
		o.state.HasPrevious = o.state.Page > 1
	}

	snapshot := o.state
	return &snapshot, nil
}

func (o *orchestrator) completeList(req request, list []*entities.Entity) (*State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.stale(req) {
		o.list = list
		o.listMode = req.mode
		o.hasList = true
		o.state.Loading = false
		o.applyList()
	}

	snapshot := o.state
	return &snapshot, nil
}

// applyList slices the materialized list for the current page; callers hold
// the lock
func (o *orchestrator) applyList() {
	total := len(o.list)
	pages := pageCount(total, o.pageSize)

	start := (o.state.Page - 1) * o.pageSize
	if start > total {
		start = total
	}
	end := start + o.pageSize
	if end > total {
		end = total
	}
	window := o.list[start:end]

	o.state.Total = total
	o.state.PageCount = pages
	o.state.Entities = window
	o.state.Items = make([]Item, len(window))
	for i, e := range window {
		o.state.Items[i] = Item{ID: e.ID, Name: e.Name}
	}
	o.state.HasNext = o.state.Page < pages
	o.state.HasPrevious = o.state.Page > 1
}

// fail records err on the state unless req was superseded. The mode and its
// parameters stay as requested so Retry re-issues the same fetch.
func (o *orchestrator) fail(req request, err error) (*State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.stale(req) {
		snapshot := o.state
		return &snapshot, nil
	}

	o.logger.Error("Browse fetch failed",
		"mode", req.mode.String(),
		"page", req.page,
		"error", err)

	o.hasList = false
	o.list = nil
	o.state.Loading = false
	o.state.Err = err
	o.state.Items = []Item{}
	o.state.Entities = nil
	o.state.HasNext = false
	o.state.HasPrevious = false

	snapshot := o.state
	return &snapshot, errors.Wrapf(err, "failed to load %s results", req.mode)
}

func pageCount(total, size int) int {
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
