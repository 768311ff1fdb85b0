// Package ratelimit counts requests per key over a sliding window.
package ratelimit

import (
	"context"
	"time"
)

type RateLimiter interface {
	// Allow records one request for key and reports whether it is within
	// limit requests per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}

// NoopRateLimiter allows everything. It is used when Redis is disabled.
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return true, nil
}

func (NoopRateLimiter) Reset(context.Context, string) error { return nil }
