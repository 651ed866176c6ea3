package bottomsheet

import "time"

// fakeClock is a manually advanced Clock. Tests are single-goroutine, so no
// locking is needed; timers fire synchronously inside advance, in order.
type fakeClock struct {
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	when    time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{when: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// advance moves the clock forward, firing due timers in chronological order.
func (c *fakeClock) advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.when.After(target) {
				continue
			}
			if next == nil || t.when.Before(next.when) {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.when
		next.fired = true
		next.fn()
	}
	c.now = target
}

// pending counts timers that are armed and not yet fired.
func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
