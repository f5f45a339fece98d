package harvest

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter gates outbound requests. The extractor waits on it before every
// fetch; the wait is a hard serialization point, not a cap over parallel
// workers.
type Limiter interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}

// Ensure CourtesyLimiter implements Limiter at compile time.
var _ Limiter = (*CourtesyLimiter)(nil)

// CourtesyLimiter enforces a fixed pause between outbound requests using a
// token bucket with burst 1. The first request passes immediately;
// subsequent requests are spaced by the configured interval.
type CourtesyLimiter struct {
	limiter *rate.Limiter
}

// NewCourtesyLimiter creates a limiter with the given minimum interval
// between requests. A non-positive interval disables the delay.
func NewCourtesyLimiter(interval time.Duration) *CourtesyLimiter {
	return &CourtesyLimiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the rate limit allows the next request.
func (l *CourtesyLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
