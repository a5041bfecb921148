package regions

import "github.com/KirkDiggler/pokedex/internal/entities"

// ListRegionsInput defines the request for the region index
type ListRegionsInput struct {
	// WithDetails also loads every region's detail into the cache
	WithDetails bool
}

// ListRegionsOutput defines the response for the region index
type ListRegionsOutput struct {
	Page *entities.Page
	// Details is aligned with Page.Results; entries that failed to load are nil
	Details []*entities.Region
}

// GetRegionInput defines the request for one region
type GetRegionInput struct {
	Name string
}

// GetRegionOutput defines the response for one region
type GetRegionOutput struct {
	Region *entities.Region
	Cached bool
}

// ListLocationsInput defines the request for a window of the location index
type ListLocationsInput struct {
	Limit  int
	Offset int
}

// ListLocationsOutput defines the response for a location listing
type ListLocationsOutput struct {
	Page *entities.Page
}

// ListLocationsByRegionInput defines the request for a region's locations
type ListLocationsByRegionInput struct {
	Region string
}

// GetLocationInput defines the request for one location
type GetLocationInput struct {
	Name string
}

// GetLocationOutput defines the response for one location
type GetLocationOutput struct {
	Location *entities.Location
}

// GetLocationAreaInput defines the request for one location area
type GetLocationAreaInput struct {
	Name string
}

// GetLocationAreaOutput defines the response for one location area
type GetLocationAreaOutput struct {
	Area *entities.LocationArea
}
