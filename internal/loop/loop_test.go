package loop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsOnErrStop(t *testing.T) {
	calls := 0
	l := New(1000, func() error {
		calls++
		if calls == 5 {
			return ErrStop
		}
		return nil
	})
	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 5, calls)
	assert.Equal(t, uint64(4), l.Frames())
}

func TestRunReturnsFrameError(t *testing.T) {
	boom := errors.New("boom")
	l := New(1000, func() error { return boom })
	assert.Equal(t, boom, l.Run(context.Background()))
}

func TestPostedWorkRunsBeforeNextFrame(t *testing.T) {
	var order []string
	l := New(1000, func() error {
		order = append(order, "frame")
		return ErrStop
	})
	ctx := context.Background()
	require.NoError(t, l.Post(ctx, func() { order = append(order, "resize-1") }))
	require.NoError(t, l.Post(ctx, func() { order = append(order, "resize-2") }))

	require.NoError(t, l.Run(ctx))
	assert.Equal(t, []string{"resize-1", "resize-2", "frame"}, order)
}

func TestCancelEndsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	l := New(1000, func() error {
		calls++
		if calls == 3 {
			cancel()
		}
		return nil
	})
	require.NoError(t, l.Run(ctx))
	assert.Equal(t, 3, calls)
	assert.Equal(t, uint64(3), l.Frames())
}

func TestPostGivesUpWhenCancelled(t *testing.T) {
	l := New(60, func() error { return nil })
	ctx, cancel := context.WithCancel(context.Background())
	for i := 0; i < cap(l.queue); i++ {
		require.NoError(t, l.Post(ctx, func() {}))
	}
	cancel()
	assert.ErrorIs(t, l.Post(ctx, func() {}), context.Canceled)
}
