package abort

import (
	"sync"
	"time"

	"github.com/watersofoblivion/abort/timers"
)

var (
	defaultScheduler     timers.Scheduler
	defaultSchedulerOnce sync.Once
)

// DefaultScheduler backs controllers built by Timeout.  It is constructed
// from the environment on first use.
func DefaultScheduler() timers.Scheduler {
	defaultSchedulerOnce.Do(func() {
		defaultScheduler = timers.EnvScheduler()
	})
	return defaultScheduler
}

// Timeout builds a controller that also cancels itself with a
// *TimeoutError after d, chaining timer segments for durations beyond the
// scheduler maximum.
func Timeout(d time.Duration, parents ...*Signal) *Controller {
	return TimeoutWith(DefaultScheduler(), d, parents...)
}

func TimeoutWith(scheduler timers.Scheduler, d time.Duration, parents ...*Signal) *Controller {
	controller := New(parents...)
	if controller.signal.Aborted() {
		return controller
	}

	cancel := timers.After(scheduler, d, func() {
		controller.Cancel(new(TimeoutError))
	})

	// Cancellation by any cause tears down the pending timer.
	controller.signal.OnAbort(func(interface{}) { cancel() })

	return controller
}
