package flow_test

import (
	"context"
	"testing"
	"time"

	"github.com/ib-77/sideflow/pkg/flow"
)

// thenWait emits the values of s and completes only once wait returns.
// It keeps a primary stream open until the side channel has done its work.
func thenWait[T any](s flow.Stream[T], wait func(ctx context.Context) error) flow.Stream[T] {
	return func(ctx context.Context, emit func(T) error) error {
		if err := s.Collect(ctx, emit); err != nil {
			return err
		}
		return wait(ctx)
	}
}

// failAfter emits values and then fails with err.
func failAfter[T any](err error, values ...T) flow.Stream[T] {
	return func(ctx context.Context, emit func(T) error) error {
		if e := flow.FromSlice(values).Collect(ctx, emit); e != nil {
			return e
		}
		return err
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}
