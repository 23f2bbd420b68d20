package abort

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalContext(t *testing.T) {
	t.Run("cancels the context when the signal aborts", func(t *testing.T) {
		controller := New()

		ctx, cancel := controller.Signal().Context(context.Background())
		defer cancel()

		assert.NoError(t, ctx.Err())

		controller.Cancel(uuid.New())

		assert.Equal(t, context.Canceled, ctx.Err())
	})

	t.Run("cancel releases without aborting the signal", func(t *testing.T) {
		controller := New()

		ctx, cancel := controller.Signal().Context(context.Background())
		cancel()

		assert.Equal(t, context.Canceled, ctx.Err())
		assert.False(t, controller.Signal().Aborted())
	})

	t.Run("respects the parent context", func(t *testing.T) {
		controller := New()

		parent, cancelParent := context.WithCancel(context.Background())
		ctx, cancel := controller.Signal().Context(parent)
		defer cancel()

		cancelParent()

		assert.Equal(t, context.Canceled, ctx.Err())
		assert.False(t, controller.Signal().Aborted())
	})
}

func TestFromContext(t *testing.T) {
	t.Run("aborts when the context completes", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		signal, stop := FromContext(ctx)
		defer stop()

		aborted := make(chan interface{}, 1)
		signal.OnAbort(func(reason interface{}) { aborted <- reason })

		cancel()

		select {
		case reason := <-aborted:
			assert.Equal(t, context.Canceled, reason)
		case <-time.After(time.Second):
			assert.Fail(t, "signal not aborted on context cancel")
		}
	})

	t.Run("aborts synchronously for a completed context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		signal, stop := FromContext(ctx)
		defer stop()

		require.True(t, signal.Aborted())
		assert.Equal(t, context.Canceled, signal.Reason())
	})

	t.Run("stop detaches the watcher", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		signal, stop := FromContext(ctx)
		stop()
		cancel()

		time.Sleep(50 * time.Millisecond)

		assert.False(t, signal.Aborted())
		assert.NotPanics(t, stop)
	})

	t.Run("composes as a parent", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		signal, stop := FromContext(ctx)
		defer stop()

		controller := New(signal)

		assert.True(t, controller.Signal().Aborted())
		assert.Equal(t, context.Canceled, controller.Signal().Reason())
	})
}
