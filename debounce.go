package bottomsheet

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single callback invocation.
// When Trigger is called multiple times within the debounce duration, only
// the last callback runs, after the duration elapses. Used to fold resize
// and orientation bursts into one metrics recompute.
type Debouncer struct {
	clock    Clock
	duration time.Duration

	mu    sync.Mutex
	timer Timer
	seq   uint64
}

// NewDebouncer creates a Debouncer with the given duration. A nil clock
// selects the real clock.
func NewDebouncer(clock Clock, duration time.Duration) *Debouncer {
	if clock == nil {
		clock = realClock{}
	}
	return &Debouncer{
		clock:    clock,
		duration: duration,
	}
}

// Trigger schedules the callback to run after the debounce duration. A
// second Trigger before then cancels the previous one and reschedules.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// Only the most recently scheduled callback may run. Stop() can
		// return false after the timer has fired, so the seq check is what
		// actually keeps a superseded callback from executing.
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		callback()
	})
	d.mu.Unlock()
}

// Cancel drops any pending callback. Safe to call with nothing pending.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the debounce duration.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
