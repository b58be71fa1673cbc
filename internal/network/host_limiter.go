package network

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostLimiter spaces requests to the same host by a minimum interval so
// sources sharing a site do not hit it concurrently.
type HostLimiter struct {
	interval time.Duration

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewHostLimiter returns a limiter allowing one request per interval and
// host. A non-positive interval disables limiting.
func NewHostLimiter(interval time.Duration) *HostLimiter {
	return &HostLimiter{interval: interval, hosts: make(map[string]*rate.Limiter)}
}

// Wait blocks until rawURL's host may be requested again. URLs without a
// host pass through.
func (l *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	if l == nil || l.interval <= 0 {
		return nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil
	}
	host := strings.ToLower(parsed.Hostname())

	l.mu.Lock()
	limiter, ok := l.hosts[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(l.interval), 1)
		l.hosts[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
