package flow

import (
	"context"
)

// Stream is a cold, pull-driven sequence of values. Every call runs the
// producer from the start.
//
// A producer hands each value to emit. When emit returns a non-nil error the
// producer must stop and return that error; it should also stop when ctx is
// done. A nil Stream behaves like Empty.
type Stream[T any] func(ctx context.Context, emit func(T) error) error

// Collect runs the stream once, passing every value to emit.
func (s Stream[T]) Collect(ctx context.Context, emit func(T) error) error {
	if s == nil {
		return nil
	}
	return s(ctx, emit)
}

func Empty[T any]() Stream[T] {
	return func(context.Context, func(T) error) error {
		return nil
	}
}

// Failed returns a stream that produces no values and ends with err.
func Failed[T any](err error) Stream[T] {
	return func(context.Context, func(T) error) error {
		return err
	}
}

// Of returns a stream of the given values.
func Of[T any](values ...T) Stream[T] {
	return FromSlice(values)
}

func FromSlice[T any](values []T) Stream[T] {
	return func(ctx context.Context, emit func(T) error) error {
		for _, v := range values {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Generate returns a stream whose i-th value is produced by next.
// The stream is infinite unless next returns an error.
func Generate[T any](next func(ctx context.Context, i int) (T, error)) Stream[T] {
	return func(ctx context.Context, emit func(T) error) error {
		for i := 0; ; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := next(ctx, i)
			if err != nil {
				return err
			}
			if err := emit(v); err != nil {
				return err
			}
		}
	}
}

// FromChan returns a stream reading ch until it is closed.
// Unlike the other sources it is hot: values taken by one collection are
// not seen by the next.
func FromChan[T any](ch <-chan T) Stream[T] {
	return func(ctx context.Context, emit func(T) error) error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case v, ok := <-ch:
				if !ok {
					return nil
				}
				if err := emit(v); err != nil {
					return err
				}
			}
		}
	}
}

// ToSlice collects all values of s. On error the values gathered so far are
// returned together with the error.
func ToSlice[T any](ctx context.Context, s Stream[T]) ([]T, error) {
	res := make([]T, 0)
	err := s.Collect(ctx, func(v T) error {
		res = append(res, v)
		return nil
	})
	return res, err
}

// ForEach calls fn for every value of s and stops at the first error.
// A nil fn drains the stream.
func ForEach[T any](ctx context.Context, s Stream[T], fn func(ctx context.Context, v T) error) error {
	return s.Collect(ctx, func(v T) error {
		if fn == nil {
			return nil
		}
		return fn(ctx, v)
	})
}

// ToChan collects s in a new goroutine and delivers every value as a Success
// result. If the stream ends with an error, a final Fail or Cancel result is
// sent before the channel is closed. The goroutine exits when ctx is done, so
// callers that stop reading early must cancel ctx.
func ToChan[T any](ctx context.Context, s Stream[T]) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)
		_ = pump(ctx, s, out, nil)
	}()

	return out
}

// pump forwards s into out. before, when set, runs for every value ahead of
// the send. A terminal error is sent as a final result when ctx allows it and
// is returned as well.
func pump[T any](ctx context.Context, s Stream[T], out chan<- Result[T],
	before func(ctx context.Context, v T) error) error {

	err := s.Collect(ctx, func(v T) error {
		if before != nil {
			if err := before(ctx, v); err != nil {
				return err
			}
		}

		select {
		case out <- Success(v):
			return nil
		case <-ctx.Done():
			return context.Cause(ctx)
		}
	})

	if err != nil {
		select {
		case out <- FailOrCancel[T](err):
		case <-ctx.Done():
		}
	}
	return err
}
