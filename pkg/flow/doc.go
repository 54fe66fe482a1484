// Package flow provides composition primitives for cold, pull-driven value
// streams. A Stream[T] is a function that produces values into an emit
// callback; collecting it twice does the work twice.
//
// Key operations:
// - FirstOrNone: take the first value of a stream, asking for no more than one
// - SideCollect: forward a primary stream while a secondary stream is drained
//   into a callback in its own task
// - SideCollectMaybe: like SideCollect, with the secondary stream built from
//   the primary stream's first value
// - Of/FromSlice/Generate/FromChan/Empty/Failed: sources
// - ToSlice/ForEach/ToChan: sinks
//
// The side task of a combined stream never outlives its collection: whether
// the primary stream is exhausted, fails, or the caller cancels, the side task
// is cancelled and joined before Collect returns. A failing side channel ends
// the whole collection with ErrSideFailure.
//
//	fresh := flow.SideCollectMaybe(fetch,
//		func(ctx context.Context, first Response) flow.Stream[Record] {
//			return persisted(first.Key)
//		},
//		func(ctx context.Context, r Record) error {
//			return cache.Put(ctx, r)
//		},
//		flow.WithBuffer(16),
//	)
//
//	resp, ok, err := flow.FirstOrNone(ctx, fresh)
package flow
