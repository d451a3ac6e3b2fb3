package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket for a single identity.
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// Limiter keeps one token bucket per identity. Buckets idle for longer
// than the expiration are dropped by Sweep.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	rate       float64 // tokens per second
	capacity   float64
	expiration time.Duration
	now        func() time.Time
}

func New(rate, capacity float64, expiration time.Duration) *Limiter {
	return &Limiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
		now:        time.Now,
	}
}

// PerMinute allows n requests per minute with the given burst.
func PerMinute(n float64, burst int) *Limiter {
	return New(n/60, float64(burst), time.Hour)
}

func (l *Limiter) get(identity string, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[identity]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[identity] = b
	}
	b.lastSeen = now
	return b
}

// Allow takes a token from the identity's bucket if one is available.
func (l *Limiter) Allow(identity string) bool {
	now := l.now()
	b := l.get(identity, now)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * l.rate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Sweep drops buckets not used within the expiration window and returns
// how many were removed.
func (l *Limiter) Sweep() int {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for identity, b := range l.buckets {
		b.mu.Lock()
		idle := now.Sub(b.lastSeen)
		b.mu.Unlock()
		if idle > l.expiration {
			delete(l.buckets, identity)
			removed++
		}
	}
	return removed
}

// Size returns the number of tracked identities.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
