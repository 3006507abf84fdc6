package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnect_Disabled(t *testing.T) {
	client, err := Connect(context.Background(), Config{Enabled: false})
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestConnect_Unreachable(t *testing.T) {
	client, err := Connect(context.Background(), Config{
		Enabled:        true,
		Addr:           "127.0.0.1:1",
		TimeoutSeconds: 1,
	})
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestRedisGuard_Errors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	g := NewRedisGuard(client, 0)
	assert.Equal(t, 24*time.Hour, g.ttl)

	ok, err := g.Acquire(context.Background(), "buy-1")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "idempotency check failed")

	assert.ErrorContains(t, g.Release(context.Background(), "buy-1"), "idempotency release failed")
}
