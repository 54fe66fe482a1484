package flow

import (
	"context"

	"github.com/ib-77/sideflow/pkg/flow/task"
)

// SideCollectMaybe is SideCollect with a secondary stream that is only known
// once the primary stream produced its first value.
//
// producer is called at most once per collection, with the first primary
// value, before that value is forwarded. A nil result means there is no side
// channel for this collection. If primary produces nothing, producer is never
// called and the waiting side task is cancelled at teardown.
func SideCollectMaybe[T, R any](primary Stream[T],
	producer func(ctx context.Context, first T) Stream[R],
	onOther func(ctx context.Context, v R) error, opts ...Option) Stream[T] {

	cfg := newConfig(opts)

	return func(ctx context.Context, emit func(T) error) error {
		other := task.NewSlot[Stream[R]]()

		return sideScope[T]{
			component: "side_collect_maybe",
			primary:   primary,
			side: func(ctx context.Context) error {
				s, err := other.Await(ctx)
				if err != nil {
					return err
				}
				if s == nil {
					return nil
				}
				return ForEach(ctx, s, onOther)
			},
			before: func(ctx context.Context, v T) error {
				if other.IsSet() {
					return nil
				}
				// single writer: only the forwarding task reaches this point
				return other.Set(producer(ctx, v))
			},
			cfg: cfg,
		}.collect(ctx, emit)
	}
}
