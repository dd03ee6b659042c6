package processor

import (
	"context"
	"sync"
	"time"

	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/metrics"
)

// RateLimiter is a sliding-window limiter shared by the pipeline workers so
// the translation dependency never sees more than max calls per window.
type RateLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	calls  []time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{max: max, window: window}
}

// Allow records a call if the window has room and reports whether it did.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-r.window)

	pruned := r.calls[:0]
	for _, t := range r.calls {
		if t.After(cutoff) {
			pruned = append(pruned, t)
		}
	}

	if len(pruned) >= r.max {
		r.calls = pruned
		return false
	}

	r.calls = append(pruned, now)
	return true
}

// Wait blocks until the window has room or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for !r.Allow() {
		metrics.RateLimitWaits.Inc()
		select {
		case <-time.After(100 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
