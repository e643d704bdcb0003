package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// RequestLimiter throttles requests to a fixed per-minute budget.
type RequestLimiter struct {
	limiter *rate.Limiter
}

// NewRequestLimiter creates a limiter allowing maxPerMinute requests with the
// given burst.
func NewRequestLimiter(maxPerMinute, burst int) *RequestLimiter {
	if maxPerMinute <= 0 {
		return &RequestLimiter{}
	}
	if burst <= 0 {
		burst = 1
	}
	return &RequestLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(maxPerMinute)/60.0), burst),
	}
}

// Allow reports whether a request may proceed now. A zero-budget limiter
// allows everything.
func (l *RequestLimiter) Allow() bool {
	if l.limiter == nil {
		return true
	}
	return l.limiter.Allow()
}

// Wait blocks until a request may proceed or the context is done.
func (l *RequestLimiter) Wait(ctx context.Context) error {
	if l.limiter == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
