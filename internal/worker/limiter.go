package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles outbound LLM API calls to a fixed request rate
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing requestsPerSecond with the given
// burst size
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a request is allowed or the context is cancelled
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed without waiting
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
