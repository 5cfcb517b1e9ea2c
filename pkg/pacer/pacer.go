package pacer

import (
	"context"
	"time"
)

// Each invokes fn for every item in order, sleeping interval between items to
// respect upstream rate limits. No delay is applied after the last item.
// Processing stops early if the context is cancelled; fn errors do not stop the
// iteration and are reported to the caller through onErr when set.
func Each[T any](ctx context.Context, items []T, interval time.Duration, fn func(context.Context, int, T) error, onErr func(int, error)) error {
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := fn(ctx, i, item); err != nil && onErr != nil {
			onErr(i, err)
		}

		if i == len(items)-1 || interval <= 0 {
			continue
		}

		if err := sleep(ctx, interval); err != nil {
			return err
		}
	}

	return nil
}

// sleep blocks for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
