package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles outbound requests per key; the loader keys by host.
type Limiter interface {
	Allow(key string) bool
	Wait(ctx context.Context, key string) error
}

// InMemoryLimiter keeps one token bucket per key
type InMemoryLimiter struct {
	buckets map[string]*rate.Limiter
	mu      sync.Mutex
	r       rate.Limit
	b       int
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(10, time.Second, 5) -> 10 requests per second per host, burst of 5
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	r := rate.Inf
	if requests > 0 && per > 0 {
		r = rate.Every(per / time.Duration(requests))
	}
	if burst < 1 {
		burst = 1
	}
	return &InMemoryLimiter{
		buckets: make(map[string]*rate.Limiter),
		r:       r,
		b:       burst,
	}
}

func (l *InMemoryLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.buckets[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.buckets[key] = limiter
	}
	return limiter
}

// Allow reports whether a request for key may proceed right now
func (l *InMemoryLimiter) Allow(key string) bool {
	return l.bucket(key).Allow()
}

// Wait blocks until a request for key may proceed or ctx is done
func (l *InMemoryLimiter) Wait(ctx context.Context, key string) error {
	return l.bucket(key).Wait(ctx)
}
