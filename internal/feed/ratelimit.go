// internal/feed/ratelimit.go
package feed

import (
	"context"
	"sync"
	"time"
)

// rateLimiter enforces a bounded number of requests per rolling one-second
// window, self-enforced client-side so the feed never sees a burst.
type rateLimiter struct {
	mu        sync.Mutex
	maxPerSec int
	sent      []time.Time
	now       func() time.Time
	sleep     func(time.Duration)
}

func newRateLimiter(maxPerSec int) *rateLimiter {
	return &rateLimiter{
		maxPerSec: maxPerSec,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Wait blocks until a request slot is free within the rolling window, or the
// context is cancelled.
func (r *rateLimiter) Wait(ctx context.Context) error {
	if r.maxPerSec <= 0 {
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.mu.Lock()
		now := r.now()
		cutoff := now.Add(-time.Second)

		// Drop timestamps that left the window.
		kept := r.sent[:0]
		for _, t := range r.sent {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		r.sent = kept

		if len(r.sent) < r.maxPerSec {
			r.sent = append(r.sent, now)
			r.mu.Unlock()
			return nil
		}

		wait := r.sent[0].Sub(cutoff)
		r.mu.Unlock()

		if wait <= 0 {
			wait = time.Millisecond
		}
		r.sleep(wait)
	}
}
