package flow

import (
	"context"
	"errors"
)

// abortSignal stops a producer once FirstOrNone has its value. Each call
// creates its own signal, so a signal raised by a nested FirstOrNone is
// never mistaken for the outer one.
type abortSignal struct{}

func (*abortSignal) Error() string {
	return "flow: collection aborted after first value"
}

// FirstOrNone returns the first value of s. ok is false if s ended without
// producing anything. s is never asked for more than one value: the value is
// answered with an abort signal that the producer propagates back.
//
// Errors other than that signal are returned unchanged.
func FirstOrNone[T any](ctx context.Context, s Stream[T]) (first T, ok bool, err error) {
	abort := &abortSignal{}

	err = s.Collect(ctx, func(v T) error {
		if !ok {
			first, ok = v, true
		}
		return abort
	})

	if err != nil && !errors.Is(err, abort) {
		var zero T
		return zero, false, err
	}
	return first, ok, nil
}
