// Package ratelimit implements a keyed sliding-window rate limiter. State is
// held in process memory, so limits apply per instance.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter allows at most limit events per key within a rolling window.
// Keys are never evicted.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
}

// New creates a limiter allowing limit events per window for each key
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow reports whether an event for the key may proceed, recording it when
// allowed. Events older than the window are pruned before counting.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.hits[key][:0]
	for _, hit := range l.hits[key] {
		if hit.After(cutoff) {
			recent = append(recent, hit)
		}
	}

	if len(recent) >= l.limit {
		l.hits[key] = recent
		return false
	}

	l.hits[key] = append(recent, now)
	return true
}

// Remaining reports how many events the key may still perform in the current
// window
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	count := 0
	for _, hit := range l.hits[key] {
		if hit.After(cutoff) {
			count++
		}
	}

	if count >= l.limit {
		return 0
	}
	return l.limit - count
}
