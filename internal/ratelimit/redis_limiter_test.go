package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiterReportsUnreachableServer(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	_, err := NewRedisLimiter(rdb, 3, time.Minute).Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestRedisLimiterZeroLimitAllowsWithoutRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	lim := NewRedisLimiter(rdb, 0, time.Minute)
	for i := 0; i < 3; i++ {
		res, err := lim.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}
}

// Runs against a real server when REDIS_ADDR_TEST is set.
func TestRedisLimiterFixedWindow(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR_TEST")
	if addr == "" {
		t.Skip("REDIS_ADDR_TEST not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()
	ctx := context.Background()

	key := "test|" + time.Now().Format(time.RFC3339Nano)
	lim := NewRedisLimiter(rdb, 2, time.Minute)
	t.Cleanup(func() { rdb.Del(ctx, lim.prefix+key) })

	for i := 0; i < 2; i++ {
		res, err := lim.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}
	res, err := lim.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Zero(t, res.Remaining)
	assert.LessOrEqual(t, res.RetryAfter, time.Minute)
	assert.Positive(t, res.RetryAfter)
}
