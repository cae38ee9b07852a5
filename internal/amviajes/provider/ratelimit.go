package provider

import (
	"context"
	"sync"
	"time"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
)

// slotLimiter hands out start times at least interval apart. A caller that
// gives up keeps its slot consumed.
type slotLimiter struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	next time.Time
}

func (l *slotLimiter) reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	start := l.next
	if start.Before(now) {
		start = now
	}
	l.next = start.Add(l.interval)
	return start.Sub(now)
}

func (l *slotLimiter) wait(ctx context.Context) error {
	delay := l.reserve()
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type rateLimited struct {
	Provider
	limiter *slotLimiter
}

// NewRateLimitedProvider spaces searches on p at least interval apart, across
// all callers. A non positive interval returns p unchanged.
func NewRateLimitedProvider(p Provider, interval time.Duration) Provider {
	if interval <= 0 {
		return p
	}
	return &rateLimited{
		Provider: p,
		limiter:  &slotLimiter{interval: interval, now: time.Now},
	}
}

func (r *rateLimited) Search(ctx context.Context, query entity.SearchQuery) ([]entity.Itinerary, error) {
	if err := r.limiter.wait(ctx); err != nil {
		return nil, err
	}
	return r.Provider.Search(ctx, query)
}
