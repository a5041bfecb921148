package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can be tested against
// miniredis or a mock without depending on a concrete client type.
type Client interface {
	redis.UniversalClient
}
