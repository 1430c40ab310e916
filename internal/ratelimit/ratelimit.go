// Package ratelimit provides a keyed token-bucket rate limiter. The API
// server uses it to throttle credential guessing on the auth endpoints,
// keyed by client IP.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// pruneInterval is how often idle entries are swept.
const pruneInterval = 10 * time.Minute

// entry pairs a limiter with its last use, so idle keys can be pruned.
type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Keyed manages an independent token bucket per key.
type Keyed struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a keyed limiter allowing rps requests per second with the
// given burst per key.
func New(rps float64, burst int) *Keyed {
	k := &Keyed{
		entries: make(map[string]*entry),
		limit:   rate.Limit(rps),
		burst:   burst,
		done:    make(chan struct{}),
	}

	go k.prune()

	return k
}

// Allow reports whether a request for the given key may proceed,
// without blocking.
func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.entries[key] = e
	}
	e.lastSeen = time.Now()

	return e.limiter.Allow()
}

// Stop shuts down the background pruning goroutine.
func (k *Keyed) Stop() {
	k.stopOnce.Do(func() {
		close(k.done)
	})
}

// prune drops entries idle long enough that their bucket is full again.
func (k *Keyed) prune() {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-k.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-pruneInterval)
			k.mu.Lock()
			for key, e := range k.entries {
				if e.lastSeen.Before(cutoff) {
					delete(k.entries, key)
				}
			}
			k.mu.Unlock()
		}
	}
}
