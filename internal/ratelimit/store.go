// Package ratelimit provides fixed-window request counters used by the
// HTTP rate limiter middleware. Two stores exist: an in-memory one for a
// single instance and a Redis-backed one for running several replicas.
package ratelimit

import "context"

type Store interface {
	// Incr bumps the counter for key in the current window and returns
	// the new count.
	Incr(ctx context.Context, key string) (int64, error)
}
