package crawler

import (
	"context"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter enforces the courtesy delay between consecutive requests to
// a host. The first request to a host passes immediately; every later one
// waits out the remainder of the configured delay.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// NewRateLimiter creates a rate limiter with the given inter-request delay.
// A zero or negative delay disables waiting entirely.
func NewRateLimiter(delay time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until a request to the given URL's host is permitted, or the
// context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context, urlStr string) error {
	if r.delay <= 0 {
		return nil
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return err
	}

	return r.limiter(parsedURL.Host).Wait(ctx)
}

// limiter gets or creates the limiter for a host. The crawl loop is
// sequential, so no locking is needed around the map.
func (r *RateLimiter) limiter(host string) *rate.Limiter {
	if l, ok := r.limiters[host]; ok {
		return l
	}
	l := rate.NewLimiter(rate.Every(r.delay), 1)
	r.limiters[host] = l
	return l
}
