package browse

import "github.com/KirkDiggler/pokedex/internal/entities"

// Mode is the authoritative source of the displayed list
type Mode int

// View modes. Exactly one is active at any time.
const (
	ModePaginated Mode = iota
	ModeCategoryFiltered
	ModeSearched
)

func (m Mode) String() string {
	switch m {
	case ModeCategoryFiltered:
		return "category"
	case ModeSearched:
		return "search"
	default:
		return "paginated"
	}
}

// State is an observable snapshot of the coordinator. Slices are shared with
// the catalog cache and must not be modified.
type State struct {
	Mode       Mode
	Page       int
	PageCount  int
	Category   string
	SearchTerm string

	// Total is the remote count in paginated mode and the list length otherwise
	Total int
	// Items lists the entries on the current page, in every mode
	Items []Item
	// Entities holds full records on the current page; nil in paginated mode
	Entities []*entities.Entity

	HasNext     bool
	HasPrevious bool
	Loading     bool
	Err         error
}

// Item is one displayed entry
type Item struct {
	ID   int
	Name string
}

// SetSearchInput defines the request for changing the search text
type SetSearchInput struct {
	Term string
}

// SetCategoryInput defines the request for changing the category filter.
// An empty Category clears the filter.
type SetCategoryInput struct {
	Category string
}

// GoToPageInput defines the request for jumping to a page (1-based)
type GoToPageInput struct {
	Page int
}
