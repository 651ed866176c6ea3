package bottomsheet

import (
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	clk := newFakeClock()
	d := NewDebouncer(clk, 150*time.Millisecond)

	calls := 0
	d.Trigger(func() { calls++ })
	clk.advance(100 * time.Millisecond)
	d.Trigger(func() { calls++ })
	clk.advance(100 * time.Millisecond)

	if calls != 0 {
		t.Fatalf("callback ran before the window elapsed: %d", calls)
	}

	clk.advance(50 * time.Millisecond)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Nothing else pending.
	clk.advance(time.Second)
	if calls != 1 {
		t.Errorf("calls after settling = %d, want 1", calls)
	}
}

func TestDebouncerCancel(t *testing.T) {
	clk := newFakeClock()
	d := NewDebouncer(clk, 150*time.Millisecond)

	calls := 0
	d.Trigger(func() { calls++ })
	d.Cancel()
	clk.advance(time.Second)

	if calls != 0 {
		t.Errorf("cancelled callback ran %d times", calls)
	}

	// Cancel with nothing pending is fine.
	d.Cancel()
}

func TestDebouncerReusableAfterFire(t *testing.T) {
	clk := newFakeClock()
	d := NewDebouncer(clk, 100*time.Millisecond)

	calls := 0
	d.Trigger(func() { calls++ })
	clk.advance(100 * time.Millisecond)
	d.Trigger(func() { calls++ })
	clk.advance(100 * time.Millisecond)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestDebouncerDuration(t *testing.T) {
	d := NewDebouncer(nil, 42*time.Millisecond)
	if d.Duration() != 42*time.Millisecond {
		t.Errorf("Duration() = %v", d.Duration())
	}
}
