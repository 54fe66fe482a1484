package flowtest

import (
	"context"
	"sync/atomic"

	"github.com/ib-77/sideflow/pkg/flow"
)

// Probe counts what happens to the streams it wraps.
//
// Probe is safe for concurrent use. The zero value is ready to use.
type Probe struct {
	produced atomic.Int64
	active   atomic.Int64
	started  atomic.Int64
	stopped  atomic.Int64
}

// Track wraps s so that every collection and every produced value is counted by p.
func Track[T any](s flow.Stream[T], p *Probe) flow.Stream[T] {
	return func(ctx context.Context, emit func(T) error) error {
		p.started.Add(1)
		p.active.Add(1)
		defer func() {
			p.active.Add(-1)
			p.stopped.Add(1)
		}()

		return s.Collect(ctx, func(v T) error {
			p.produced.Add(1)
			return emit(v)
		})
	}
}

// Produced returns the number of values handed downstream.
func (p *Probe) Produced() int64 {
	return p.produced.Load()
}

// Active returns the number of collections currently running.
func (p *Probe) Active() int64 {
	return p.active.Load()
}

func (p *Probe) Started() int64 {
	return p.started.Load()
}

func (p *Probe) Stopped() int64 {
	return p.stopped.Load()
}

// Naturals returns the infinite stream 0, 1, 2, ...
func Naturals() flow.Stream[int] {
	return flow.Generate(func(_ context.Context, i int) (int, error) {
		return i, nil
	})
}
