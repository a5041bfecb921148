package favorites

import (
	"context"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex/internal/errors"
	redisclient "github.com/KirkDiggler/pokedex/internal/redis"
)

type redisRepository struct {
	client redisclient.Client
	key    string
}

// RedisConfig contains configuration for the Redis favorites repository.
type RedisConfig struct {
	Client redisclient.Client
	// Key (optional, defaults to DefaultKey)
	Key string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	return nil
}

// NewRedis creates a new Redis-backed favorites repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		key:    cfg.Key,
	}, nil
}

func (r *redisRepository) Load(ctx context.Context) (*LoadOutput, error) {
	result, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return &LoadOutput{IDs: []int{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to load favorites from %s", r.key)
	}

	ids, err := decodeIDs(r.key, result)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{IDs: ids}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	data, err := encodeIDs(input.IDs)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save favorites to %s", r.key)
	}
	return &SaveOutput{}, nil
}
