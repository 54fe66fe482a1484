package flow

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidBuffer is returned when a configured buffer size is negative.
	ErrInvalidBuffer = errors.New("flow: buffer size must not be negative")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("flow: failed to parse environment variables into config")
)

// ErrSideFailure reports that the side channel of a combined stream failed,
// either while collecting the secondary stream or inside its callback.
// The collection of the combined stream ends with this error.
type ErrSideFailure struct {
	Err error
}

func (e ErrSideFailure) Error() string {
	return fmt.Sprintf("flow: side channel failed: %v", e.Err)
}

func (e ErrSideFailure) Unwrap() error {
	return e.Err
}

// IsCancellationError reports whether err stems from a cancelled or expired context.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
