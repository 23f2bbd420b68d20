package abort

import (
	"context"
	"sync"
)

// Context derives a context from parent that is cancelled when the signal
// aborts.  The returned cancel detaches it without aborting the signal.
func (signal *Signal) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	remove := signal.OnAbort(func(interface{}) { cancel() })

	return ctx, func() {
		remove()
		cancel()
	}
}

// FromContext builds a signal that aborts with ctx.Err() when ctx
// completes.  The returned stop function detaches the watcher.
func FromContext(ctx context.Context) (*Signal, func()) {
	signal := newSignal()

	if err := ctx.Err(); err != nil {
		signal.cancel(err)
		return signal, func() {}
	}

	stop := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			// A stop that raced the context still wins.
			select {
			case <-stop:
			default:
				signal.cancel(ctx.Err())
			}
		case <-stop:
		}
	}()

	var once sync.Once
	return signal, func() {
		once.Do(func() { close(stop) })
	}
}
