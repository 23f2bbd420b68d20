package abort

import "errors"

const TimeoutErrorName string = "TimeoutError"

// ErrReleased is the reason a controller is cancelled with when it is
// released without having been cancelled for a real cause.
var ErrReleased = errors.New("abort: controller released")

// TimeoutError is the reason a timeout controller cancels itself with when
// its deadline elapses.
type TimeoutError struct{}

func (err *TimeoutError) Error() string {
	return "abort: the operation timed out"
}

func (err *TimeoutError) Name() string {
	return TimeoutErrorName
}

func (err *TimeoutError) Timeout() bool {
	return true
}

// IsTimeout reports whether reason marks a timeout, following the net.Error
// convention.
func IsTimeout(reason interface{}) bool {
	err, ok := reason.(interface {
		Timeout() bool
	})
	return ok && err.Timeout()
}
