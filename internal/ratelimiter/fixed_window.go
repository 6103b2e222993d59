package ratelimiter

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow(ip string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int           `env:"REQUESTS_COUNT" envDefault:"200"`
	TimeFrame            time.Duration `env:"TIMEFRAME" envDefault:"5s"`
	Enabled              bool          `env:"ENABLED" envDefault:"false"`
}

// FixedWindowRateLimiter counts requests per client IP inside a fixed
// window. Counts reset together when the window rolls over, so a client can
// burst up to 2x the limit across a boundary; acceptable for this surface.
type FixedWindowRateLimiter struct {
	mu          sync.Mutex
	counts      map[string]int
	windowStart time.Time
	limit       int
	window      time.Duration
}

func NewFixedWindow(limit int, window time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		counts:      make(map[string]int),
		windowStart: time.Now(),
		limit:       limit,
		window:      window,
	}
}

func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if elapsed := now.Sub(rl.windowStart); elapsed >= rl.window {
		rl.counts = make(map[string]int)
		rl.windowStart = now
	}

	if rl.counts[ip] < rl.limit {
		rl.counts[ip]++
		return true, 0
	}

	return false, rl.window - now.Sub(rl.windowStart)
}
