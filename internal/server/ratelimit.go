package server

import (
	"sync"

	"golang.org/x/time/rate"
)

// clientLimiter implements per-client-host rate limiting.
type clientLimiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// newClientLimiter creates a limiter; a non-positive rate disables limiting
// and returns nil.
func newClientLimiter(requestsPerSecond float64, burst int) *clientLimiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}

	return &clientLimiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Allow checks if a request from the given host is allowed without waiting.
func (l *clientLimiter) Allow(host string) bool {
	return l.getLimiter(host).Allow()
}

// getLimiter returns the limiter for a host, creating it on first sight.
func (l *clientLimiter) getLimiter(host string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[host]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring the write lock
	if limiter, exists := l.limiters[host]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[host] = limiter
	return limiter
}
