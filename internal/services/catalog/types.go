package catalog

import (
	"time"

	"github.com/KirkDiggler/pokedex/internal/entities"
)

// Status is the lifecycle of the full-catalog snapshot
type Status int

// Snapshot states. A Failed snapshot is fetched again on the next request.
const (
	StatusNotFetched Status = iota
	StatusFetching
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFetching:
		return "fetching"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "not_fetched"
	}
}

// Snapshot describes the full-catalog cache entry
type Snapshot struct {
	Status    Status
	Count     int
	FetchedAt time.Time
	Err       error
}

// GetPageInput defines the request for one window of the entity index
type GetPageInput struct {
	Limit  int
	Offset int
}

// GetPageOutput defines the response for one window of the entity index
type GetPageOutput struct {
	Page *entities.Page
	// Cached is true when the page was served without a remote call
	Cached bool
}

// GetFullCatalogOutput defines the response for the materialized catalog.
// Entities is shared with every other caller and must not be modified.
type GetFullCatalogOutput struct {
	Entities  []*entities.Entity
	FetchedAt time.Time
}

// SearchInput defines the request for a name search
type SearchInput struct {
	Term string
}

// SearchOutput defines the response for a name search
type SearchOutput struct {
	Term string
	// Searching is false when the term was empty and the search was cleared
	Searching bool
	Entities  []*entities.Entity
}

// GetEntityInput defines the request for one entity's detail
type GetEntityInput struct {
	NameOrID string
}

// GetEntityOutput defines the response for one entity's detail
type GetEntityOutput struct {
	Entity *entities.Entity
}
