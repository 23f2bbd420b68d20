package timersmock

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type Scheduler struct {
	mock.Mock
}

func (mock *Scheduler) Schedule(d time.Duration, fn func()) func() {
	args := mock.Called(d, fn)
	if cancel := args.Get(0); cancel != nil {
		return cancel.(func())
	}
	return func() {}
}

func (mock *Scheduler) MaxInterval() time.Duration {
	args := mock.Called()
	return args.Get(0).(time.Duration)
}
