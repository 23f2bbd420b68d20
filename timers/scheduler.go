package timers

import (
	"math"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const EnvVarMaxTimerInterval string = "ABORT_MAX_TIMER_INTERVAL"

// DefaultMaxInterval is the largest delay accepted by host timer APIs that
// take a 32-bit count of milliseconds.
const DefaultMaxInterval time.Duration = time.Duration(math.MaxInt32) * time.Millisecond

// Scheduler fires a callback once after a bounded delay.  Delays passed to
// Schedule must not exceed MaxInterval.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
	MaxInterval() time.Duration
}

type ClockScheduler struct {
	Clock clockwork.Clock
	Max   time.Duration
}

func NewClockScheduler(clock clockwork.Clock) *ClockScheduler {
	return &ClockScheduler{
		Clock: clock,
		Max:   DefaultMaxInterval,
	}
}

func EnvScheduler() *ClockScheduler {
	scheduler := NewClockScheduler(clockwork.NewRealClock())
	if value := os.Getenv(EnvVarMaxTimerInterval); value != "" {
		if max, err := time.ParseDuration(value); err == nil && max > 0 {
			scheduler.Max = max
		}
	}
	return scheduler
}

func (scheduler *ClockScheduler) MaxInterval() time.Duration {
	return scheduler.Max
}

func (scheduler *ClockScheduler) Schedule(d time.Duration, fn func()) func() {
	stop := make(chan struct{})

	go func() {
		select {
		case <-scheduler.Clock.After(d):
			// A cancel that raced the clock still wins.
			select {
			case <-stop:
			default:
				fn()
			}
		case <-stop:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stop) })
	}
}
