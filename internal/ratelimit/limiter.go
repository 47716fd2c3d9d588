// Package ratelimit implements a per-key fixed-window request counter.
package ratelimit

import (
	"context"
	"time"
)

// Result describes one Allow decision.
type Result struct {
	Allowed   bool
	Remaining int
	// RetryAfter is how long until the current window closes.
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
