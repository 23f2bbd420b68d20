package abort

type Controller struct {
	signal *Signal
}

// New builds a controller cancelled by the first of an explicit Cancel call
// or the cancellation of any parent signal.  Nil parents are ignored.
func New(parents ...*Signal) *Controller {
	controller := &Controller{signal: newSignal()}

	filtered := make([]*Signal, 0, len(parents))
	for _, parent := range parents {
		if parent == nil {
			continue
		}
		if parent.Aborted() {
			controller.signal.cancel(parent.Reason())
			return controller
		}
		filtered = append(filtered, parent)
	}

	for _, parent := range filtered {
		parent.onAbort(controller.propagate, controller.signal)
	}

	return controller
}

func (controller *Controller) propagate(reason interface{}) {
	controller.Cancel(reason)
}

func (controller *Controller) Signal() *Signal {
	return controller.signal
}

// Cancel aborts the signal with reason.  The first call wins.
func (controller *Controller) Cancel(reason interface{}) {
	controller.signal.cancel(reason)
}

// Release frees the pending timer and parent subscriptions; it has no
// effect on an already-cancelled controller.
func (controller *Controller) Release() {
	controller.signal.cancel(ErrReleased)
}
