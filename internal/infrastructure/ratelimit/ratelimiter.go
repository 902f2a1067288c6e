package ratelimit

import (
	"context"
	"time"

	"github.com/orris-inc/setracker/internal/shared/config"
)

type RateLimitConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// FromLoginLimit converts the login_limit config section.
func FromLoginLimit(cfg config.LoginLimitConfig) RateLimitConfig {
	return RateLimitConfig{
		MaxAttempts: cfg.MaxAttempts,
		Window:      time.Duration(cfg.WindowSeconds) * time.Second,
	}
}

// RateLimiter counts failures per key. Allow does not consume an attempt;
// RecordFailure does.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	GetRemaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}
