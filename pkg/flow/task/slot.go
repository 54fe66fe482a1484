package task

import (
	"context"
	"errors"
	"sync"
)

// ErrSlotAssigned is returned by Slot.Set when the slot already holds a value.
var ErrSlotAssigned = errors.New("task: slot already assigned")

// Slot is a single-assignment cell. It is written at most once; readers
// block until the write happens or their context is done.
type Slot[V any] struct {
	once  sync.Once
	done  chan struct{}
	value V
}

func NewSlot[V any]() *Slot[V] {
	return &Slot[V]{done: make(chan struct{})}
}

// Set stores v. Only the first call has an effect; later calls return
// ErrSlotAssigned and leave the stored value untouched.
func (s *Slot[V]) Set(v V) error {
	err := ErrSlotAssigned
	s.once.Do(func() {
		s.value = v
		close(s.done)
		err = nil
	})
	return err
}

// Await returns the stored value, waiting for it if necessary.
// If ctx is done first, the context error is returned.
func (s *Slot[V]) Await(ctx context.Context) (V, error) {
	// An assigned slot wins over a done context.
	select {
	case <-s.done:
		return s.value, nil
	default:
	}

	select {
	case <-s.done:
		return s.value, nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// TryGet returns the stored value without blocking.
func (s *Slot[V]) TryGet() (V, bool) {
	select {
	case <-s.done:
		return s.value, true
	default:
		var zero V
		return zero, false
	}
}

func (s *Slot[V]) IsSet() bool {
	_, ok := s.TryGet()
	return ok
}

// Done returns a channel closed once the slot is assigned.
func (s *Slot[V]) Done() <-chan struct{} {
	return s.done
}
