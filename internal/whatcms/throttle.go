package whatcms

import (
	"context"
	"time"
)

// throttle enforces a minimum spacing between consecutive API calls. The
// spacing is anchored to call-start timestamps: a call that itself takes
// longer than the delay incurs no extra wait before the next one. State is
// owned by one Client instance, so no locking is required.
type throttle struct {
	delay time.Duration
	last  time.Time
}

func newThrottle(delay time.Duration) *throttle {
	return &throttle{delay: delay}
}

// Wait blocks until the configured delay has elapsed since the previous
// call's start, then records the current call's start. The first call never
// waits. Context cancellation cuts the sleep short and is returned.
func (t *throttle) Wait(ctx context.Context) error {
	if t.delay > 0 && !t.last.IsZero() {
		if remaining := t.delay - time.Since(t.last); remaining > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(remaining):
			}
		}
	}
	t.last = time.Now()
	return nil
}
