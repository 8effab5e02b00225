package ratelimit

import (
	"context"
	"time"
)

// Store records one attempt for key and returns the attempt count inside the
// current window. A window starts at the first attempt for a key and lasts
// for the given duration; the first attempt after it elapses starts a new
// window with a count of 1.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Entry is the per-key state of a fixed window.
type Entry struct {
	WindowStart time.Time
	Count       int64
}
