package tlg

import (
	"context"
	"time"

	"github.com/gotd/td/tgerr"
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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

// RetryFloodWait runs fn and, when it fails with FLOOD_WAIT_N, sleeps exactly N and
// runs it once more. The second error, if any, is returned as is.
func RetryFloodWait(ctx context.Context, fn func(ctx context.Context) error) error {
	return RetryFloodWaitWith(ctx, Sleep, fn)
}

func RetryFloodWaitWith(ctx context.Context, sleep SleepFunc, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}
	d, ok := tgerr.AsFloodWait(err)
	if !ok {
		return err
	}
	if err := sleep(ctx, d); err != nil {
		return err
	}
	return fn(ctx)
}
