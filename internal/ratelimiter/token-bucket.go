package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// TokenBucketRateLimiter keeps one token bucket per key. A bucket holds
// limit tokens and refills completely over one window.
type TokenBucketRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*client
	limit     rate.Limit
	burst     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewTokenBucketLimiter(limit int, window time.Duration) *TokenBucketRateLimiter {
	if limit < 1 {
		limit = 1
	}

	return &TokenBucketRateLimiter{
		limiters: make(map[string]*client),
		limit:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (rl *TokenBucketRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweepLocked(now)

	c, ok := rl.limiters[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = c
	}
	c.lastSeen = now

	reservation := c.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return false, rl.window
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		// the request is rejected, so give the token back
		reservation.CancelAt(now)
		return false, delay
	}

	return true, 0
}

// sweepLocked drops buckets idle for a full window; they would be full again anyway.
func (rl *TokenBucketRateLimiter) sweepLocked(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	rl.lastSweep = now

	for key, c := range rl.limiters {
		if now.Sub(c.lastSeen) >= rl.window {
			delete(rl.limiters, key)
		}
	}
}
