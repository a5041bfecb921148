package testutils

import (
	"fmt"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/testutils/builders"
)

// CreateTestEntity creates an entity with sensible defaults
func CreateTestEntity(id int, name string, types ...string) *entities.Entity {
	b := builders.NewEntityBuilder(id, name)
	if len(types) > 0 {
		b.WithTypes(types...)
	}
	return b.Build()
}

// ResourceFor returns the index entry the remote source lists for an entity
func ResourceFor(id int, name string) entities.NamedResource {
	return entities.NamedResource{
		Name: name,
		URL:  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", id),
	}
}

// IndexOf returns the index entries for the given entities, in order
func IndexOf(list ...*entities.Entity) []entities.NamedResource {
	out := make([]entities.NamedResource, len(list))
	for i, e := range list {
		out[i] = ResourceFor(e.ID, e.Name)
	}
	return out
}

// CreateTestSpecies creates a species record pointing at chainURL.
// An empty chainURL yields a species without evolution data.
func CreateTestSpecies(id int, name, chainURL string) *entities.Species {
	return &entities.Species{
		ID:                id,
		Name:              name,
		EvolutionChainURL: chainURL,
		Descriptions: []entities.LocalizedText{
			{Locale: entities.DefaultLocale, Text: "A test species."},
		},
		Genera: []entities.LocalizedText{
			{Locale: entities.DefaultLocale, Text: "Test Pokémon"},
		},
		Varieties: []entities.Variety{
			{IsDefault: true, Entity: ResourceFor(id, name)},
		},
	}
}

// StarterCatalog returns a small catalog spanning several categories
func StarterCatalog() []*entities.Entity {
	return []*entities.Entity{
		CreateTestEntity(1, "bulbasaur", "grass", "poison"),
		CreateTestEntity(4, "charmander", "fire"),
		CreateTestEntity(7, "squirtle", "water"),
		CreateTestEntity(25, "pikachu", "electric"),
		CreateTestEntity(26, "raichu", "electric"),
		CreateTestEntity(37, "vulpix", "fire"),
		CreateTestEntity(58, "growlithe", "fire"),
		CreateTestEntity(731, "pikipek", "normal", "flying"),
	}
}
