// Package ratelimit provides a fixed-window request limiter keyed by
// client address. Counters live in process memory; cross-instance
// limiting is out of scope.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// Limiter allows at most max hits per key within each window. The
// counter update is atomic per key, so concurrent attempts cannot slip
// past the limit.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[string]*window

	now func() time.Time // overridable in tests
}

func New(windowLen time.Duration, max int) *Limiter {
	return &Limiter{
		max:    max,
		window: windowLen,
		hits:   make(map[string]*window),
		now:    time.Now,
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, ok := l.hits[key]
	if !ok || now.Sub(w.start) >= l.window {
		l.prune(now)
		w = &window{start: now}
		l.hits[key] = w
	}

	w.count++
	return w.count <= l.max
}

// prune drops expired windows. Called with the lock held, only when a
// window rolls over, so the map does not grow with one-off keys forever.
func (l *Limiter) prune(now time.Time) {
	for k, w := range l.hits {
		if now.Sub(w.start) >= l.window {
			delete(l.hits, k)
		}
	}
}
