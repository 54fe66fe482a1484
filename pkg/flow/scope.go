package flow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/sideflow/pkg/flow/task"
)

// sideScope describes one combined stream: the primary values are forwarded
// through a channel while side runs in its own task.
type sideScope[T any] struct {
	component string
	primary   Stream[T]
	side      func(ctx context.Context) error
	// before runs in the forwarding task ahead of every primary value.
	before func(ctx context.Context, v T) error
	cfg    config
}

// collect runs one collection. Both tasks are cancelled and joined before it
// returns, whatever ended the collection, a panic in emit included.
func (s sideScope[T]) collect(ctx context.Context, emit func(T) error) (err error) {
	log := s.cfg.logger.With(
		slog.String("component", s.component),
		slog.String("collection_id", uuid.NewString()),
	)

	scope, stop := context.WithCancelCause(ctx)
	defer stop(nil)

	side := task.Start(scope, func(ctx context.Context) error {
		err := s.side(ctx)
		if err != nil && !task.Interrupted(ctx, err) {
			stop(ErrSideFailure{Err: err})
		}
		return err
	})
	log.DebugContext(ctx, "side channel started", slog.String("task_id", side.ID().String()))

	out := make(chan Result[T], s.cfg.buffer)
	var primaryErr error
	producer := task.Start(scope, func(ctx context.Context) error {
		defer close(out)
		primaryErr = pump(ctx, s.primary, out, s.before)
		return primaryErr
	})

	defer func() {
		producer.Cancel()
		side.Cancel()
		perr := producer.Join()
		serr := side.Join()

		// primaryErr is safe to read once the producer is joined. A cancelled
		// scope names the reason (a side failure or the caller's cancellation)
		// only when the primary did not run to completion.
		cause := context.Cause(scope)
		if cause != nil && (IsCancellationError(err) || (err == nil && primaryErr != nil)) {
			err = cause
		}
		if err == nil && perr != nil {
			err = perr
		}
		if err == nil && serr != nil {
			err = ErrSideFailure{Err: serr}
		}

		if err != nil {
			log.DebugContext(ctx, "side channel stopped", slog.Any("error", err))
		} else {
			log.DebugContext(ctx, "side channel stopped")
		}
	}()

	debug := log.Enabled(ctx, slog.LevelDebug)
	for res := range out {
		if !res.IsSuccess() {
			return res.Err()
		}
		if debug {
			log.DebugContext(ctx, "forwarding primary value",
				slog.String("result_id", res.ID().String()),
				slog.Duration("queued", time.Since(res.CreatedAt())),
			)
		}
		if err := emit(res.Value()); err != nil {
			return err
		}
	}
	return nil
}
