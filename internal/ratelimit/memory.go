package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps window entries in process memory. Entries are lost on
// restart and not shared between instances.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
	now     func() time.Time
}

type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*Entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok || now.Sub(ent.WindowStart) >= window {
		s.entries[key] = &Entry{WindowStart: now, Count: 1}
		return 1, nil
	}

	// Counted even when already over the limit.
	ent.Count++
	return ent.Count, nil
}

// Snapshot returns a copy of the entry for key.
func (s *MemoryStore) Snapshot(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *ent, true
}

// Cleanup drops entries whose window ended before now-window.
func (s *MemoryStore) Cleanup(window time.Duration) {
	cutoff := s.now().Add(-window)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.WindowStart.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor removes expired entries every interval until ctx is done.
func (s *MemoryStore) StartJanitor(ctx context.Context, window, every time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup(window)
			}
		}
	}()
}
