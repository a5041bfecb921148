// Package mocks provides gateway expectation helpers for common testing patterns
package mocks

import (
	"strconv"

	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokedex/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex/internal/entities"
)

// ExpectEntities sets up one GetEntity expectation per entity, keyed by name
func ExpectEntities(mockClient *pokeapimock.MockClient, list ...*entities.Entity) {
	for _, e := range list {
		mockClient.EXPECT().
			GetEntity(gomock.Any(), e.Name).
			Return(e, nil)
	}
}

// ExpectEntityError sets up a failing GetEntity expectation
func ExpectEntityError(mockClient *pokeapimock.MockClient, nameOrID string, err error) *gomock.Call {
	return mockClient.EXPECT().
		GetEntity(gomock.Any(), nameOrID).
		Return(nil, err)
}

// ExpectSpeciesByID sets up a GetSpecies expectation addressed by numeric id
func ExpectSpeciesByID(mockClient *pokeapimock.MockClient, species *entities.Species) *gomock.Call {
	return mockClient.EXPECT().
		GetSpecies(gomock.Any(), strconv.Itoa(species.ID)).
		Return(species, nil)
}

// ExpectChain sets up a GetEvolutionChain expectation for chainURL
func ExpectChain(mockClient *pokeapimock.MockClient, chainURL string, chain *entities.EvolutionChain) *gomock.Call {
	return mockClient.EXPECT().
		GetEvolutionChain(gomock.Any(), chainURL).
		Return(chain, nil)
}
