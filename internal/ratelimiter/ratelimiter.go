package ratelimiter

import "time"

type Limiter interface {
	// Allow reports whether key may make another request, and if not, how
	// long until the current window ends.
	Allow(key string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}
