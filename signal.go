package abort

import (
	"sync"

	"github.com/eapache/queue"
)

type listener struct {
	fn      func(reason interface{})
	removed bool
}

type scopedRef struct {
	signal   *Signal
	listener *listener
}

// Signal is the read-only side of a Controller.
type Signal struct {
	mu        sync.Mutex
	aborted   bool
	reason    interface{}
	listeners *queue.Queue
	scoped    []scopedRef
}

func newSignal() *Signal {
	return &Signal{listeners: queue.New()}
}

func (signal *Signal) Aborted() bool {
	signal.mu.Lock()
	defer signal.mu.Unlock()
	return signal.aborted
}

func (signal *Signal) Reason() interface{} {
	signal.mu.Lock()
	defer signal.mu.Unlock()
	return signal.reason
}

// OnAbort registers a one-shot listener invoked synchronously on abort, in
// registration order; on an already-aborted signal fn runs before OnAbort
// returns.
func (signal *Signal) OnAbort(fn func(reason interface{})) (remove func()) {
	return signal.onAbort(fn, nil)
}

// onAbort optionally scopes the listener's lifetime to another signal.
func (signal *Signal) onAbort(fn func(reason interface{}), scope *Signal) func() {
	signal.mu.Lock()

	if signal.aborted {
		reason := signal.reason
		signal.mu.Unlock()
		fn(reason)
		return func() {}
	}

	if signal.listeners == nil {
		signal.listeners = queue.New()
	}

	l := &listener{fn: fn}
	signal.listeners.Add(l)
	signal.mu.Unlock()

	if scope != nil {
		scope.adopt(signal, l)
	}

	return func() { signal.remove(l) }
}

func (signal *Signal) remove(l *listener) {
	signal.mu.Lock()
	defer signal.mu.Unlock()

	l.removed = true
	l.fn = nil

	if signal.listeners == nil {
		return
	}

	// Compact detached entries off the head so a long-lived signal does
	// not accumulate dead listeners.
	for signal.listeners.Length() > 0 {
		head := signal.listeners.Peek().(*listener)
		if !head.removed {
			break
		}
		signal.listeners.Remove()
	}
}

// adopt records that l, registered on target, should be removed when this
// signal aborts.
func (signal *Signal) adopt(target *Signal, l *listener) {
	signal.mu.Lock()

	if signal.aborted {
		signal.mu.Unlock()
		target.remove(l)
		return
	}

	signal.scoped = append(signal.scoped, scopedRef{signal: target, listener: l})
	signal.mu.Unlock()
}

func (signal *Signal) cancel(reason interface{}) {
	signal.mu.Lock()

	if signal.aborted {
		signal.mu.Unlock()
		return
	}

	signal.aborted = true
	signal.reason = reason

	scoped := signal.scoped
	signal.scoped = nil

	var listeners []*listener
	if signal.listeners != nil {
		listeners = make([]*listener, 0, signal.listeners.Length())
		for signal.listeners.Length() > 0 {
			listeners = append(listeners, signal.listeners.Remove().(*listener))
		}
	}

	signal.mu.Unlock()

	// Detach from remaining parents before notifying.
	for _, ref := range scoped {
		ref.signal.remove(ref.listener)
	}

	for _, l := range listeners {
		signal.mu.Lock()
		if l.removed {
			signal.mu.Unlock()
			continue
		}
		fn := l.fn
		l.removed = true
		l.fn = nil
		signal.mu.Unlock()

		fn(reason)
	}
}
