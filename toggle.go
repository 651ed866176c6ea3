package bottomsheet

import "sync"

// ToggleBus is the channel unrelated UI controls use to request an
// expand/collapse step. The engine subscribes at Start and treats each
// published request like a tap on the drag handle.
type ToggleBus struct {
	mu   sync.Mutex
	next uint64
	subs []toggleSub
}

type toggleSub struct {
	id uint64
	fn func()
}

// NewToggleBus creates an empty bus.
func NewToggleBus() *ToggleBus {
	return &ToggleBus{}
}

// Subscribe registers fn and returns its unsubscribe function. Unsubscribing
// twice is a no-op.
func (b *ToggleBus) Subscribe(fn func()) (cancel func()) {
	b.mu.Lock()
	b.next++
	id := b.next
	b.subs = append(b.subs, toggleSub{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers a toggle request to every subscriber, synchronously, in
// subscription order.
func (b *ToggleBus) Publish() {
	b.mu.Lock()
	subs := make([]toggleSub, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}
