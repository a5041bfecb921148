package builders

import (
	"fmt"

	"github.com/KirkDiggler/pokedex/internal/entities"
)

// ChainBuilder builds an evolution chain one branch at a time. Evolve always
// descends into the node it just added; Branch adds a sibling next to it.
type ChainBuilder struct {
	chain   *entities.EvolutionChain
	current *entities.ChainLink
	parent  *entities.ChainLink
}

// NewChainBuilder starts a chain rooted at the given species
func NewChainBuilder(id int, rootSpecies string) *ChainBuilder {
	root := &entities.ChainLink{Species: SpeciesRef(0, rootSpecies)}
	return &ChainBuilder{
		chain:   &entities.EvolutionChain{ID: id, Chain: root},
		current: root,
	}
}

// Evolve adds a child of the current node and moves to it
func (b *ChainBuilder) Evolve(species string, details ...entities.EvolutionDetail) *ChainBuilder {
	link := &entities.ChainLink{Species: SpeciesRef(0, species), Details: details}
	b.current.EvolvesTo = append(b.current.EvolvesTo, link)
	b.parent = b.current
	b.current = link
	return b
}

// Branch adds a sibling of the current node without moving
func (b *ChainBuilder) Branch(species string, details ...entities.EvolutionDetail) *ChainBuilder {
	if b.parent == nil {
		return b
	}
	link := &entities.ChainLink{Species: SpeciesRef(0, species), Details: details}
	b.parent.EvolvesTo = append(b.parent.EvolvesTo, link)
	return b
}

// Build returns the built chain
func (b *ChainBuilder) Build() *entities.EvolutionChain {
	return b.chain
}

// URL returns the chain's resource URL as it appears on a species record
func (b *ChainBuilder) URL() string {
	return ChainURL(b.chain.ID)
}

// ChainURL returns the resource URL for an evolution chain id
func ChainURL(id int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/evolution-chain/%d/", id)
}

// SpeciesRef returns a species resource; id 0 yields a name-addressed URL
func SpeciesRef(id int, name string) entities.NamedResource {
	key := name
	if id > 0 {
		key = fmt.Sprint(id)
	}
	return entities.NamedResource{
		Name: name,
		URL:  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon-species/%s/", key),
	}
}

// LevelUp returns a level-up detail at the given level
func LevelUp(level int) entities.EvolutionDetail {
	return entities.EvolutionDetail{Trigger: entities.TriggerLevelUp, MinLevel: level}
}

// UseItem returns a use-item detail for the given item
func UseItem(item string) entities.EvolutionDetail {
	return entities.EvolutionDetail{Trigger: entities.TriggerUseItem, Item: item}
}

// Trade returns a trade detail, optionally with a named partner species
func Trade(partner string) entities.EvolutionDetail {
	return entities.EvolutionDetail{Trigger: entities.TriggerTrade, TradeSpecies: partner}
}
