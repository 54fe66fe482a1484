package flowtest

import (
	"context"
	"sync"
)

// Recorder records side channel values for tests.
//
// Record has the callback signature expected by flow.SideCollect, and is
// safe under concurrent calls. The zero value is ready to use.
type Recorder[T any] struct {
	values []T
	notify chan struct{}
	err    error
	mu     sync.Mutex
}

// FailWith makes every following Record call return err.
func (r *Recorder[T]) FailWith(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

// Record appends v.
func (r *Recorder[T]) Record(_ context.Context, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.values = append(r.values, v)
	if r.notify != nil {
		close(r.notify)
		r.notify = nil
	}
	return nil
}

// Values returns a snapshot copy of recorded values.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]T, len(r.values))
	copy(cp, r.values)
	return cp
}

func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// WaitFor blocks until at least n values were recorded or ctx is done.
func (r *Recorder[T]) WaitFor(ctx context.Context, n int) error {
	for {
		r.mu.Lock()
		if len(r.values) >= n {
			r.mu.Unlock()
			return nil
		}
		if r.notify == nil {
			r.notify = make(chan struct{})
		}
		ch := r.notify
		r.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
