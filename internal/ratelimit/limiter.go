package ratelimit

import (
	"context"
	"log/slog"
	"time"
)

// UnknownKey is the shared bucket for clients without an identifiable IP.
const UnknownKey = "unknown"

// Decision is the outcome of one Check.
type Decision struct {
	Allowed bool
	Count   int64
	// RetryAfter is only set when the request was denied.
	RetryAfter time.Duration
}

// Limiter caps attempts per key at Max within Window.
type Limiter struct {
	store  Store
	max    int64
	window time.Duration
	scope  string
}

// New returns a limiter whose keys are namespaced by scope, so each route
// counts its own attempts.
func New(store Store, scope string, max int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		max:    int64(max),
		window: window,
		scope:  scope,
	}
}

func (l *Limiter) Max() int { return int(l.max) }
func (l *Limiter) Window() time.Duration { return l.window }

// Allow records an attempt for clientKey and reports whether it is within
// the limit.
func (l *Limiter) Allow(ctx context.Context, clientKey string) bool {
	return l.Check(ctx, clientKey).Allowed
}

func (l *Limiter) Check(ctx context.Context, clientKey string) Decision {
	if l == nil || l.store == nil {
		return Decision{Allowed: true}
	}
	if clientKey == "" {
		clientKey = UnknownKey
	}

	key := clientKey
	if l.scope != "" {
		key = l.scope + ":" + clientKey
	}

	n, err := l.store.Hit(ctx, key, l.window)
	if err != nil {
		slog.WarnContext(ctx, "rate limit store unavailable, allowing request",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return Decision{Allowed: true}
	}

	if n > l.max {
		return Decision{Allowed: false, Count: n, RetryAfter: l.window}
	}
	return Decision{Allowed: true, Count: n}
}
