package timers

import (
	"sync"
	"time"
)

type chunkedTimer struct {
	mu        sync.Mutex
	scheduler Scheduler
	remaining time.Duration
	fn        func()
	cancel    func()
	stopped   bool
}

// After fires fn once after d, chaining scheduler segments when d exceeds
// the scheduler's maximum interval.  A non-positive d fires fn
// synchronously.
func After(scheduler Scheduler, d time.Duration, fn func()) (cancel func()) {
	if d <= 0 {
		fn()
		return func() {}
	}

	timer := &chunkedTimer{
		scheduler: scheduler,
		remaining: d,
		fn:        fn,
	}

	timer.mu.Lock()
	timer.schedule()
	timer.mu.Unlock()

	return timer.stop
}

// schedule arms the next segment.  Callers must hold mu.
func (timer *chunkedTimer) schedule() {
	segment := timer.remaining
	if max := timer.scheduler.MaxInterval(); segment > max {
		segment = max
	}
	timer.cancel = timer.scheduler.Schedule(segment, func() { timer.fired(segment) })
}

func (timer *chunkedTimer) fired(segment time.Duration) {
	timer.mu.Lock()

	if timer.stopped {
		timer.mu.Unlock()
		return
	}

	timer.remaining -= segment
	if timer.remaining > 0 {
		timer.schedule()
		timer.mu.Unlock()
		return
	}

	timer.stopped = true
	fn := timer.fn
	timer.mu.Unlock()

	fn()
}

func (timer *chunkedTimer) stop() {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if timer.stopped {
		return
	}

	timer.stopped = true
	timer.cancel()
}
