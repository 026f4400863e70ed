package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/encounter-builder/internal/redis"
)

func TestNewClient(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")

	client, err := redis.NewClient(mr.Addr(), &redis.Options{Password: "secret", DB: 0})
	require.NoError(t, err)
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	require.NoError(t, redis.Ping(context.Background(), client))
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	assert.Equal(t, "v", client.Get(context.Background(), "k").Val())
}

func TestPing(t *testing.T) {
	assert.Error(t, redis.Ping(context.Background(), nil))

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err)
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	mr.Close()
	assert.Error(t, redis.Ping(context.Background(), client))
}
