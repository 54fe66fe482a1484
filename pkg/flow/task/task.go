package task

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Task is a goroutine bound to its own cancellable context.
type Task struct {
	id        uuid.UUID
	ctx       context.Context
	cancel    context.CancelFunc
	group     errgroup.Group
	done      chan struct{}
	cancelled atomic.Bool
	joinOnce  sync.Once
	err       error
}

// Start runs fn in a new goroutine. The context passed to fn is derived from
// ctx and is cancelled by Cancel.
func Start(ctx context.Context, fn func(ctx context.Context) error) *Task {
	taskCtx, cancel := context.WithCancel(ctx)
	t := &Task{
		id:     uuid.New(),
		ctx:    taskCtx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	t.group.Go(func() error {
		defer close(t.done)
		return fn(taskCtx)
	})

	return t
}

// ID returns the unique identifier of the task.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Cancel requests termination. It does not wait; use Join for that.
// Cancel is safe to call multiple times and concurrently.
func (t *Task) Cancel() {
	t.cancelled.Store(true)
	t.cancel()
}

// Join blocks until the task has returned and reports its error.
// After Cancel, an error that merely reports the task's own context being
// done is reported as nil. Any other error, including a context error the
// task function produced on its own, is returned.
func (t *Task) Join() error {
	t.joinOnce.Do(func() {
		err := t.group.Wait()
		if t.cancelled.Load() && Interrupted(t.ctx, err) {
			err = nil
		}
		t.cancel()
		t.err = err
	})
	return t.err
}

// CancelAndJoin cancels the task and waits for it to terminate.
func (t *Task) CancelAndJoin() error {
	t.Cancel()
	return t.Join()
}

// Done returns a channel that is closed once the task function has returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Interrupted reports whether err is ctx reporting that it is done: ctx must
// be done and err must match its error or its cause.
func Interrupted(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() == nil {
		return false
	}
	return errors.Is(err, ctx.Err()) || errors.Is(err, context.Cause(ctx))
}
