package bottomsheet

// ============================================================================
// Input Event Types
// ============================================================================

// PointerPhase identifies where in a contact's lifetime an event sits.
type PointerPhase uint8

const (
	PhaseDown PointerPhase = iota + 1
	PhaseMove
	PhaseUp
	// PhaseCancel is delivered when the host revokes the contact (e.g. the
	// system takes over the gesture). The engine treats it like a release at
	// zero velocity.
	PhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent is a normalized input record. Hosts translate their native
// touch/pointer/mouse events into these; the engine never sees platform
// event objects, so any input source (including a test script) can drive it.
type PointerEvent struct {
	Phase PointerPhase

	// Screen coordinates in pixels.
	X, Y float64

	// Time is the event timestamp in milliseconds. Only deltas matter, so
	// any monotonic origin works.
	Time int64

	// Contact identifies the finger/pointer. The engine tracks exactly one
	// contact; a second concurrent contact aborts the active gesture.
	Contact int
}
