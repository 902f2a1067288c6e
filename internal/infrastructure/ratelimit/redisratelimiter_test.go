package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/setracker/internal/shared/config"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

// steppingClock advances one millisecond per call so every failure gets its own member.
func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

func newTestLimiter(client *redis.Client, max int, window time.Duration) *RedisRateLimiter {
	limiter := NewRedisRateLimiter(client, RateLimitConfig{MaxAttempts: max, Window: window})
	limiter.now = steppingClock(time.Now())
	return limiter
}

func TestRedisRateLimiter_BlocksAfterMaxFailures(t *testing.T) {
	client := setupTestRedis(t)
	limiter := newTestLimiter(client, 3, time.Minute)
	ctx := context.Background()
	key := "login:alice"

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
		require.NoError(t, limiter.RecordFailure(ctx, key))
	}

	allowed, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, allowed, "4th attempt should be denied")
}

func TestRedisRateLimiter_AllowDoesNotConsume(t *testing.T) {
	client := setupTestRedis(t)
	limiter := newTestLimiter(client, 1, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "login:bob")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisRateLimiter_DifferentKeys(t *testing.T) {
	client := setupTestRedis(t)
	limiter := newTestLimiter(client, 1, time.Minute)
	ctx := context.Background()

	require.NoError(t, limiter.RecordFailure(ctx, "login:alice"))

	allowed, err := limiter.Allow(ctx, "login:alice")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "login:bob")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_GetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := newTestLimiter(client, 5, time.Minute)
	ctx := context.Background()
	key := "login:remaining"

	remaining, err := limiter.GetRemaining(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(5), remaining)

	for i := 0; i < 7; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, key))
	}

	remaining, err = limiter.GetRemaining(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), remaining)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := newTestLimiter(client, 2, time.Minute)
	ctx := context.Background()
	key := "login:reset"

	require.NoError(t, limiter.RecordFailure(ctx, key))
	require.NoError(t, limiter.RecordFailure(ctx, key))

	allowed, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, key))

	allowed, err = limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_SlidingWindow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, RateLimitConfig{MaxAttempts: 1, Window: time.Minute})
	ctx := context.Background()
	key := "login:sliding"

	now := time.Now()
	limiter.now = func() time.Time { return now }
	require.NoError(t, limiter.RecordFailure(ctx, key))

	allowed, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, allowed)

	limiter.now = func() time.Time { return now.Add(61 * time.Second) }
	allowed, err = limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, allowed, "failure older than the window should no longer count")
}

func TestRedisRateLimiter_ZeroLimitAllowsEverything(t *testing.T) {
	client := setupTestRedis(t)
	limiter := newTestLimiter(client, 0, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "login:zero"))
	}
	allowed, err := limiter.Allow(ctx, "login:zero")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFromLoginLimit(t *testing.T) {
	cfg := FromLoginLimit(config.LoginLimitConfig{MaxAttempts: 5, WindowSeconds: 900})
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Window)
}
