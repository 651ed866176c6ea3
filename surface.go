package bottomsheet

// Panel is the draggable surface the engine positions. Hosts implement it
// over whatever they render with (a DOM node, a native view, a test
// recorder).
type Panel interface {
	// SetOffset translates the panel down from its fully expanded position
	// by the given number of pixels. Called on every committed state change
	// and on every live drag frame.
	SetOffset(px float64)

	// SetState applies the styling hook for a resting state. States are
	// mutually exclusive; applying one clears the others.
	SetState(s State)
}

// Backdrop is the dimming layer behind the panel.
type Backdrop interface {
	SetVisible(visible bool)
	SetOpacity(opacity float64)
}

// Content is the optional scrollable region inside the panel. The engine
// only reads its scroll position, for the scroll-boundary handoff rule.
type Content interface {
	ScrollTop() float64
}

// Host receives the "sheet open" flag (true in any state above the bottom
// one), the body-class analog pages use to suppress background scrolling.
type Host interface {
	SetSheetOpen(open bool)
}
