package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/orris-inc/setracker/internal/domain/ticket"
)

const ticketSequenceKeyPrefix = "setracker:ticket_seq:"

// NumberSource lists numbers already issued, used to seed a fresh counter.
type NumberSource interface {
	NumbersForYear(ctx context.Context, prefix string, year int) ([]string, error)
}

// RedisNumberGenerator issues ticket numbers with INCR on a per-year key.
// INCR is atomic, so concurrent callers never share a sequence.
type RedisNumberGenerator struct {
	client  *redis.Client
	prefix  string
	numbers NumberSource
}

func NewRedisNumberGenerator(client *redis.Client, prefix string, numbers NumberSource) *RedisNumberGenerator {
	if prefix == "" {
		prefix = ticket.DefaultNumberPrefix
	}
	return &RedisNumberGenerator{client: client, prefix: prefix, numbers: numbers}
}

func (g *RedisNumberGenerator) Next(ctx context.Context, year int) (string, error) {
	key := g.buildKey(year)

	exists, err := g.client.Exists(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to check ticket sequence: %w", err)
	}
	if exists == 0 {
		issued, err := g.numbers.NumbersForYear(ctx, g.prefix, year)
		if err != nil {
			return "", err
		}
		// SETNX keeps whichever seed landed first.
		if err := g.client.SetNX(ctx, key, ticket.MaxSequence(issued, g.prefix, year), 0).Err(); err != nil {
			return "", fmt.Errorf("failed to seed ticket sequence: %w", err)
		}
	}

	seq, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to increment ticket sequence: %w", err)
	}

	return ticket.FormatNumber(g.prefix, year, seq), nil
}

func (g *RedisNumberGenerator) buildKey(year int) string {
	return ticketSequenceKeyPrefix + ticket.NumberScope(g.prefix, year)
}

// NewClient builds a Redis client and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}
