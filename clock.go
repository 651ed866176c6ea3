package bottomsheet

import "time"

// Clock abstracts time for the engine's timers so that debouncing and the
// transition safety timeout can be tested without wall-clock waits.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the timer. Returns false if it already fired or was
	// already stopped.
	Stop() bool
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// NewRealClock returns a Clock backed by the time package. Passing a nil
// Clock anywhere in this package selects this implementation.
func NewRealClock() Clock { return realClock{} }
