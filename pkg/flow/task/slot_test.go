package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_SetThenAwait(t *testing.T) {
	t.Parallel()

	s := NewSlot[string]()
	assert.False(t, s.IsSet())

	require.NoError(t, s.Set("first"))
	assert.True(t, s.IsSet())

	v, err := s.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestSlot_SecondSetIsRejected(t *testing.T) {
	t.Parallel()

	s := NewSlot[int]()
	require.NoError(t, s.Set(1))
	require.ErrorIs(t, s.Set(2), ErrSlotAssigned)

	v, ok := s.TryGet()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestSlot_AwaitBlocksUntilSet(t *testing.T) {
	t.Parallel()

	s := NewSlot[int]()
	got := make(chan int, 1)

	go func() {
		v, err := s.Await(context.Background())
		if err == nil {
			got <- v
		}
	}()

	select {
	case <-got:
		t.Fatal("await returned before the slot was set")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, s.Set(42))

	select {
	case v := <-got:
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("await did not return after set")
	}
}

func TestSlot_AwaitIsCancellable(t *testing.T) {
	t.Parallel()

	s := NewSlot[int]()
	ctx, cancel := context.WithCancel(context.Background())

	tk := Start(ctx, func(ctx context.Context) error {
		_, err := s.Await(ctx)
		return err
	})

	cancel()
	require.ErrorIs(t, tk.Join(), context.Canceled)
	assert.False(t, s.IsSet())
}

func TestSlot_AssignedValueWinsOverDoneContext(t *testing.T) {
	t.Parallel()

	s := NewSlot[int]()
	require.NoError(t, s.Set(7))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := s.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
