package ratelimit

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	count int64
	start time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	window  time.Duration
}

func NewMemoryStore(window time.Duration) *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		window:  window,
	}
}

func (s *MemoryStore) Incr(_ context.Context, key string) (int64, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok || now.Sub(b.start) > s.window {
		b = &bucket{start: now}
		s.buckets[key] = b
	}

	b.count++
	return b.count, nil
}
