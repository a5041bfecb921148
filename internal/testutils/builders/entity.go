// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/pokedex/internal/entities"
)

// EntityBuilder provides a fluent interface for building test Entity instances
type EntityBuilder struct {
	entity *entities.Entity
}

// NewEntityBuilder creates a new builder with minimal defaults
func NewEntityBuilder(id int, name string) *EntityBuilder {
	return &EntityBuilder{
		entity: &entities.Entity{
			ID:          id,
			Name:        name,
			Types:       []string{"normal"},
			SpeciesName: name,
			ArtworkURL:  fmt.Sprintf("https://art.test/%d.png", id),
			Height:      10,
			Weight:      100,
		},
	}
}

// WithTypes sets the category tags in slot order
func (b *EntityBuilder) WithTypes(types ...string) *EntityBuilder {
	b.entity.Types = types
	return b
}

// WithSpecies sets the species the entity belongs to
func (b *EntityBuilder) WithSpecies(species string) *EntityBuilder {
	b.entity.SpeciesName = species
	return b
}

// WithStats sets all six stats in canonical order
func (b *EntityBuilder) WithStats(hp, attack, defense, spAttack, spDefense, speed int) *EntityBuilder {
	values := []int{hp, attack, defense, spAttack, spDefense, speed}
	b.entity.Stats = make([]entities.Stat, len(entities.StatNames))
	for i, name := range entities.StatNames {
		b.entity.Stats[i] = entities.Stat{Name: name, BaseStat: values[i]}
	}
	return b
}

// WithSize sets height and weight in tenths
func (b *EntityBuilder) WithSize(height, weight int) *EntityBuilder {
	b.entity.Height = height
	b.entity.Weight = weight
	return b
}

// Build returns the built entity
func (b *EntityBuilder) Build() *entities.Entity {
	return b.entity
}
