package timersmock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestScheduler(t *testing.T) {
	t.Run("Schedule", func(t *testing.T) {
		scheduler := new(Scheduler)

		canceled := false
		cancel := func() { canceled = true }

		scheduler.On("Schedule", time.Second, mock.AnythingOfType("func()")).Return(cancel)

		returned := scheduler.Schedule(time.Second, func() {})
		returned()

		scheduler.AssertExpectations(t)
		assert.True(t, canceled)

		t.Run("returns no-op cancel", func(t *testing.T) {
			scheduler := new(Scheduler)

			scheduler.On("Schedule", time.Second, mock.AnythingOfType("func()")).Return(nil)

			returned := scheduler.Schedule(time.Second, func() {})

			scheduler.AssertExpectations(t)
			assert.NotPanics(t, returned)
		})
	})

	t.Run("MaxInterval", func(t *testing.T) {
		scheduler := new(Scheduler)

		scheduler.On("MaxInterval").Return(time.Minute)

		returned := scheduler.MaxInterval()

		scheduler.AssertExpectations(t)
		assert.Equal(t, time.Minute, returned)
	})
}
