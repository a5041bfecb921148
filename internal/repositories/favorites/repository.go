// Package favorites provides the interface for favorites persistence. Every
// backend stores the whole set as a JSON array of entity ids under one key.
package favorites

//go:generate mockgen -destination=mock/mock_repository.go -package=favoritesmock github.com/KirkDiggler/pokedex/internal/repositories/favorites Repository

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

// DefaultKey is the storage key the favorites set lives under
const DefaultKey = "pokemonFavorites"

// Repository defines the interface for favorites persistence
type Repository interface {
	// Load reads the persisted ids in insertion order
	// Returns an empty list when nothing was saved yet
	// Returns errors.DataLoss when the stored value cannot be decoded
	// Returns errors.Internal for storage failures
	Load(ctx context.Context) (*LoadOutput, error)

	// Save replaces the persisted ids
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// LoadOutput defines the output for loading favorites
type LoadOutput struct {
	IDs []int
}

// SaveInput defines the input for saving favorites
type SaveInput struct {
	IDs []int
}

// SaveOutput defines the output for saving favorites
type SaveOutput struct {
	// Empty for now, can be extended later
}

func encodeIDs(ids []int) ([]byte, error) {
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal favorites")
	}
	return data, nil
}

func decodeIDs(key string, data []byte) ([]int, error) {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal favorites").
			WithMeta("key", key)
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}
