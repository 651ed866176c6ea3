package bottomsheet

// handoff reinterprets a content-area scroll gesture as a sheet drag at the
// scroll boundary. While the content is scrolled to its top and the contact
// travels downward past the handoff distance with no sheet gesture in
// progress, a drag session begins with the current position as its synthetic
// start point; every later event is delegated to the engine.
type handoff struct {
	engine   *Engine
	content  Content
	distance float64

	tracking bool
	contact  int
	startY   float64
}

func newHandoff(engine *Engine, content Content, distance float64) *handoff {
	return &handoff{
		engine:   engine,
		content:  content,
		distance: distance,
	}
}

func (h *handoff) handle(ev PointerEvent) {
	if h.engine.Dragging() {
		// A session exists (ours or the handle's): the engine owns the
		// contact now.
		h.engine.HandlePointer(ev)
		if ev.Phase == PhaseUp || ev.Phase == PhaseCancel {
			h.tracking = false
		}
		return
	}

	switch ev.Phase {
	case PhaseDown:
		h.tracking = true
		h.contact = ev.Contact
		h.startY = ev.Y

	case PhaseMove:
		if !h.tracking || ev.Contact != h.contact {
			return
		}
		if h.content.ScrollTop() > 0 {
			// Ordinary content scroll. Travel only counts from the moment
			// the scroll boundary is reached.
			h.startY = ev.Y
			return
		}
		if ev.Y-h.startY > h.distance {
			h.engine.startContentDrag(ev)
		}

	case PhaseUp, PhaseCancel:
		h.tracking = false
	}
}

// startContentDrag opens a drag session from the content handoff, using the
// current contact position as the session start.
func (e *Engine) startContentDrag(ev PointerEvent) {
	if e.inert {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.contactDown(ev, sourceContent)
}
