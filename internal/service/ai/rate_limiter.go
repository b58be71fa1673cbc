package ai

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"quill/backend/internal/logger"
	"quill/backend/internal/metrics"
)

// DefaultRateLimit is the provider call rate used when none is configured.
const DefaultRateLimit = 2

// RateLimiter spaces provider calls across every generation worker. Calls
// are admitted one at a time (burst 1) so a sweep never bursts a provider.
// A nil *RateLimiter admits everything.
type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), 1)}
}

// Wait blocks until the next call may start or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	start := time.Now()
	err := r.limiter.Wait(ctx)
	metrics.ProviderWait.Observe(time.Since(start).Seconds())
	return err
}

// SetLimit changes the rate in place. rate.Limiter is safe for concurrent
// use, so waiters pick up the new rate on their next reservation.
func (r *RateLimiter) SetLimit(qps int) {
	if r == nil {
		return
	}
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	if rate.Limit(qps) == r.limiter.Limit() {
		return
	}
	r.limiter.SetLimit(rate.Limit(qps))
	logger.Info("ai rate limit updated", "module", "ai", "action", "update", "resource", "rate_limit", "result", "ok", "qps", qps)
}

func (r *RateLimiter) GetLimit() int {
	if r == nil {
		return 0
	}
	return int(r.limiter.Limit())
}
