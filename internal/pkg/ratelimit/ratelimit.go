package ratelimit

import (
	"time"

	"tagmytrophy/internal/pkg/clock"

	gocache "github.com/patrickmn/go-cache"
)

// Limiter is a fixed-window counter keyed by caller identifier (client IP).
// Windows live in an injectable TTL store so a shared backing store can be
// swapped in for multi-instance deployments; with the default go-cache store
// limits are per-process.
type Limiter struct {
	store  *gocache.Cache
	limit  int
	window time.Duration
	clock  clock.Clock
}

type windowEntry struct {
	count    int
	resetsAt time.Time
}

func New(limit int, window time.Duration, clk clock.Clock) *Limiter {
	// Expired windows are evicted lazily by the store; the janitor interval
	// only bounds how long dead keys linger.
	store := gocache.New(window, 2*window)
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
		clock:  clk,
	}
}

// Allow records a request for key and reports whether it fits in the
// current window. The first request of a new or elapsed window always
// passes and opens a fresh window.
func (l *Limiter) Allow(key string) bool {
	now := l.clock.Now()

	v, found := l.store.Get(key)
	if !found {
		l.startWindow(key, now)
		return true
	}

	entry, ok := v.(windowEntry)
	if !ok || !now.Before(entry.resetsAt) {
		l.startWindow(key, now)
		return true
	}

	if entry.count >= l.limit {
		return false
	}

	entry.count++
	l.store.Set(key, entry, entry.resetsAt.Sub(now))
	return true
}

func (l *Limiter) startWindow(key string, now time.Time) {
	l.store.Set(key, windowEntry{count: 1, resetsAt: now.Add(l.window)}, l.window)
}
