package ratelimit

import (
	"context"
	"time"
)

// Config bounds attempts per key within a sliding window.
type Config struct {
	MaxAttempts int
	Window      time.Duration
}

type RateLimiter interface {
	// Allow records an attempt for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset forgets every attempt recorded for key.
	Reset(ctx context.Context, key string) error
}
