package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can be tested against a mock
type Client interface {
	redis.UniversalClient
}
