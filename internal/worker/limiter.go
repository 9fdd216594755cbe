package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles corpus file reads across batch workers. Useful when
// the corpus lives on a network mount that penalizes bursts. A zero rate
// means unlimited.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a read-rate limiter.
func NewLimiter(readsPerSecond float64, burst int) *Limiter {
	if readsPerSecond <= 0 {
		return &Limiter{}
	}
	if burst <= 0 {
		burst = 5
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(readsPerSecond), burst)}
}

// Wait blocks until a read is allowed or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.limiter == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Allow reports whether a read may proceed without waiting.
func (l *Limiter) Allow() bool {
	if l.limiter == nil {
		return true
	}
	return l.limiter.Allow()
}
