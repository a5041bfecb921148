// Package entities holds the catalog data model shared by every component.
// Values are built from remote responses and never mutated afterwards.
package entities

import "strings"

// Stat names in the fixed order the remote source reports them
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// StatNames is the fixed 6-tuple of stat names
var StatNames = []string{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

// Categories lists the canonical category (type) tags an entity can carry
var Categories = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic",
	"bug", "rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// IsCategory reports whether c is one of the canonical category tags
func IsCategory(c string) bool {
	c = strings.ToLower(c)
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// NamedResource is a name plus the URL the remote source uses to address it
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID returns the identifier embedded in the resource URL, or 0
func (r NamedResource) ID() int {
	return IDFromURL(r.URL)
}

// Stat is one named numeric attribute of an entity
type Stat struct {
	Name     string `json:"name"`
	BaseStat int    `json:"base_stat"`
}

// Entity is a single catalog record
type Entity struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Types       []string `json:"types"`
	Stats       []Stat   `json:"stats"`
	ArtworkURL  string   `json:"artwork_url,omitempty"`
	SpriteURL   string   `json:"sprite_url,omitempty"`
	Height      int      `json:"height"` // decimetres
	Weight      int      `json:"weight"` // hectograms
	SpeciesName string   `json:"species_name,omitempty"`
}

// Artwork returns the preferred image for the entity: official artwork when
// present, otherwise the default front sprite.
func (e *Entity) Artwork() string {
	if e.ArtworkURL != "" {
		return e.ArtworkURL
	}
	return e.SpriteURL
}

// HasType reports whether the entity carries the given category tag
func (e *Entity) HasType(category string) bool {
	category = strings.ToLower(category)
	for _, t := range e.Types {
		if t == category {
			return true
		}
	}
	return false
}

// Stat returns the base value of the named stat and whether it was present
func (e *Entity) Stat(name string) (int, bool) {
	for _, s := range e.Stats {
		if s.Name == name {
			return s.BaseStat, true
		}
	}
	return 0, false
}

// StatTotal sums every base stat
func (e *Entity) StatTotal() int {
	total := 0
	for _, s := range e.Stats {
		total += s.BaseStat
	}
	return total
}

// HeightMeters converts the stored height (tenths of a metre) to metres
func (e *Entity) HeightMeters() float64 {
	return float64(e.Height) / 10
}

// WeightKilograms converts the stored weight (tenths of a kilogram) to kilograms
func (e *Entity) WeightKilograms() float64 {
	return float64(e.Weight) / 10
}

// Page is one window of a paginated index
type Page struct {
	Count    int             `json:"count"`
	Next     string          `json:"next,omitempty"`
	Previous string          `json:"previous,omitempty"`
	Results  []NamedResource `json:"results"`
}

// HasNext reports whether the remote source advertises a further page
func (p *Page) HasNext() bool {
	return p != nil && p.Next != ""
}

// HasPrevious reports whether the remote source advertises a previous page
func (p *Page) HasPrevious() bool {
	return p != nil && p.Previous != ""
}
