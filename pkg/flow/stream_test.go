package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/sideflow/pkg/flow"
)

func TestOf_ToSlice(t *testing.T) {
	t.Parallel()

	got, err := flow.ToSlice(context.Background(), flow.Of(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestStream_IsCold(t *testing.T) {
	t.Parallel()

	runs := 0
	s := flow.Stream[int](func(ctx context.Context, emit func(int) error) error {
		runs++
		return emit(runs)
	})

	first, err := flow.ToSlice(context.Background(), s)
	require.NoError(t, err)
	second, err := flow.ToSlice(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, first)
	assert.Equal(t, []int{2}, second)
}

func TestNilStream_IsEmpty(t *testing.T) {
	t.Parallel()

	var s flow.Stream[int]
	got, err := flow.ToSlice(context.Background(), s)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFromSlice_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := flow.ToSlice(ctx, flow.FromSlice([]string{"a", "b"}))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}

func TestGenerate_EndsWithError(t *testing.T) {
	t.Parallel()

	done := errors.New("done")
	s := flow.Generate(func(_ context.Context, i int) (int, error) {
		if i == 3 {
			return 0, done
		}
		return i * i, nil
	})

	got, err := flow.ToSlice(context.Background(), s)
	require.ErrorIs(t, err, done)
	assert.Equal(t, []int{0, 1, 4}, got)
}

func TestFromChan(t *testing.T) {
	t.Parallel()

	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	close(ch)

	got, err := flow.ToSlice(context.Background(), flow.FromChan(ch))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestForEach_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	var seen []int
	err := flow.ForEach(context.Background(), flow.Of(1, 2, 3), func(_ context.Context, v int) error {
		seen = append(seen, v)
		if v == 2 {
			return stop
		}
		return nil
	})

	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestToChan_DeliversValuesThenError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var results []flow.Result[int]
	for r := range flow.ToChan(testContext(t), failAfter(boom, 1, 2)) {
		results = append(results, r)
	}

	require.Len(t, results, 3)
	assert.True(t, results[0].IsSuccess())
	assert.Equal(t, 1, results[0].Value())
	assert.Equal(t, 2, results[1].Value())
	assert.True(t, results[2].IsFailure())
	assert.ErrorIs(t, results[2].Err(), boom)
}

func TestToChan_ClosesOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(testContext(t))
	ch := flow.ToChan(ctx, flow.Generate(func(_ context.Context, i int) (int, error) {
		return i, nil
	}))

	r := <-ch
	require.True(t, r.IsSuccess())
	cancel()

	for r := range ch {
		if !r.IsSuccess() {
			assert.True(t, r.IsCancel())
		}
	}
}
