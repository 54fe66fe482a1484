package flow

import "context"

// SideCollect returns a stream with exactly the values of primary, in order.
// While it is being collected, other is collected in a separate task and
// every value of other is passed to onOther.
//
// When the primary stream ends, fails, or the collection is cancelled, the
// side task is cancelled and joined before the collection returns. An error
// from other or onOther ends the collection with ErrSideFailure.
func SideCollect[T, R any](primary Stream[T], other Stream[R],
	onOther func(ctx context.Context, v R) error, opts ...Option) Stream[T] {

	cfg := newConfig(opts)

	return func(ctx context.Context, emit func(T) error) error {
		return sideScope[T]{
			component: "side_collect",
			primary:   primary,
			side: func(ctx context.Context) error {
				return ForEach(ctx, other, onOther)
			},
			cfg: cfg,
		}.collect(ctx, emit)
	}
}
