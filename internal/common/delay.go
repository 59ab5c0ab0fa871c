package common

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first.
// It returns ctx.Err() if the context ended the wait, nil otherwise.
// A non-positive d returns immediately.
//
// Services use this to emulate backend latency before touching their
// stores, so loading states stay observable while an abandoned caller
// can still stop waiting through context cancellation.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
