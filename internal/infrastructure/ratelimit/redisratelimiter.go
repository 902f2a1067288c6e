package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter keeps one sorted set per key, scored by failure time,
// so the window slides instead of resetting on a boundary.
type RedisRateLimiter struct {
	client *redis.Client
	config RateLimitConfig
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, config RateLimitConfig) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.config.MaxAttempts <= 0 {
		return true, nil
	}

	count, err := l.count(ctx, key)
	if err != nil {
		return false, err
	}
	return count < int64(l.config.MaxAttempts), nil
}

func (l *RedisRateLimiter) RecordFailure(ctx context.Context, key string) error {
	redisKey := l.getKey(key)
	nowNano := l.now().UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: fmt.Sprintf("%d", nowNano)})
	pipe.Expire(ctx, redisKey, l.config.Window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) GetRemaining(ctx context.Context, key string) (int64, error) {
	count, err := l.count(ctx, key)
	if err != nil {
		return 0, err
	}
	remaining := int64(l.config.MaxAttempts) - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) count(ctx context.Context, key string) (int64, error) {
	redisKey := l.getKey(key)
	windowStart := l.now().Add(-l.config.Window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to execute pipeline: %w", err)
	}
	return zcard.Val(), nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("setracker:ratelimit:%s", identifier)
}
