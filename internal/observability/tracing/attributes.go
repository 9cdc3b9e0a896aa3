package tracing

import (
	"context"
	"errors"
)

// SafeError filters context-cancellation noise out of span error recording.
func SafeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
