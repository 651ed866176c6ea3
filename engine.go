// Package bottomsheet implements the draggable multi-state panel engine used
// to present a secondary control surface on narrow touch viewports.
//
// The engine owns a small continuous-input state machine: it maps named
// resting states to pixel offsets for the current viewport, tracks a single
// drag contact with rubber-banded overscroll and a rolling velocity window,
// decides a target state on release (tap, fling, or nearest), and settles
// there with an animated transition. All visual effects go through the
// caller-supplied Panel/Backdrop interfaces; all input arrives as normalized
// PointerEvent records.
package bottomsheet

import (
	"math"
	"sync"
	"time"

	"github.com/agiangrant/bottomsheet/internal/log"
)

// EngineConfig bundles the engine's collaborators and tuning.
type EngineConfig struct {
	Panel    Panel    // required
	Backdrop Backdrop // required
	Host     Host     // optional
	Clock    Clock    // optional, defaults to the real clock
	Config   Config   // zero value selects DefaultConfig
}

// Engine is the sheet state machine. Create one per panel with NewEngine.
//
// If a required collaborator is missing the engine is permanently inert:
// every method is a no-op. Failures never escalate past a warning log; the
// panel simply stays where it is.
type Engine struct {
	mu sync.Mutex

	cfg      Config
	panel    Panel
	backdrop Backdrop
	host     Host
	clock    Clock

	inert bool

	metrics Metrics

	state  State
	offset float64

	session *gestureSession

	trans  *transition
	gen    uint64
	safety Timer
}

// NewEngine creates an engine for one panel. A nil Panel or Backdrop makes
// the instance inert.
func NewEngine(ec EngineConfig) *Engine {
	e := &Engine{
		cfg:      ec.Config,
		panel:    ec.Panel,
		backdrop: ec.Backdrop,
		host:     ec.Host,
		clock:    ec.Clock,
		state:    StateCollapsed,
		metrics:  fallbackMetrics(),
	}
	if e.clock == nil {
		e.clock = realClock{}
	}
	if (e.cfg == Config{}) {
		e.cfg = DefaultConfig()
	}
	e.cfg.sanitize()

	if e.panel == nil || e.backdrop == nil {
		log.Warnf("bottomsheet: panel or backdrop missing, engine is inert")
		e.inert = true
	}
	return e
}

// Inert reports whether the engine was disabled at construction.
func (e *Engine) Inert() bool { return e.inert }

// State returns the current committed state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Offset returns the current rendered offset, including any live drag or
// transition position.
func (e *Engine) Offset() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.offset
}

// Metrics returns the offset table in effect.
func (e *Engine) Metrics() Metrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.metrics
}

// Dragging reports whether a gesture session is live.
func (e *Engine) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session != nil
}

// SetViewport recomputes the offset table for a new geometry and re-renders
// the panel at the current state's (possibly changed) offset, without
// animation. Non-finite or non-positive measurements keep the last-known
// -good table, or the conservative fallback if none exists yet.
func (e *Engine) SetViewport(viewportH, panelH float64) {
	if e.inert {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if !validGeometry(viewportH, panelH) {
		log.Warnf("bottomsheet: invalid geometry %vx%v, keeping previous metrics", viewportH, panelH)
	} else {
		e.metrics = computeMetrics(viewportH, panelH, e.cfg)
	}

	// A resize mid-gesture or mid-settle snaps straight to a resting
	// position; the superseded transition's completion becomes a no-op.
	e.session = nil
	e.supersede()

	if !e.metrics.IsActive(e.state) {
		log.Debugf("bottomsheet: state %v no longer active, falling back to %v", e.state, e.metrics.Lowest())
		e.state = e.metrics.Lowest()
	}
	e.offset = e.metrics.Offsets[e.state]
	e.renderCommitted()
}

// HandlePointer feeds one drag-handle input event into the engine.
func (e *Engine) HandlePointer(ev PointerEvent) {
	if e.inert {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	switch ev.Phase {
	case PhaseDown:
		e.contactDown(ev, sourceHandle)
	case PhaseMove:
		e.contactMove(ev)
	case PhaseUp:
		e.contactUp(ev)
	case PhaseCancel:
		if e.session != nil && ev.Contact == e.session.contact {
			e.abortSession()
		}
	}
}

func (e *Engine) contactDown(ev PointerEvent, src gestureSource) {
	if e.session != nil {
		if ev.Contact == e.session.contact {
			return
		}
		// Second simultaneous contact: abandon the gesture at its last
		// committed offset, as if released at zero velocity.
		e.abortSession()
		return
	}

	// Starting a gesture while a transition is settling takes over at the
	// transition's current position.
	if e.trans != nil {
		e.offset = e.trans.offsetAt(e.clock.Now())
	}
	e.supersede()

	committed := clamp(e.offset, 0, e.metrics.MaxOffset())
	e.offset = committed
	e.session = newGestureSession(committed, ev.Y, ev.Time, ev.Contact, src, e.cfg.VelocityWindow)
	log.Debugf("bottomsheet: gesture start contact=%d offset=%.1f", ev.Contact, committed)
}

func (e *Engine) contactMove(ev PointerEvent) {
	if e.session == nil || ev.Contact != e.session.contact {
		return
	}
	raw := e.session.rawOffset(ev.Y)
	e.offset = rubberBand(raw, e.metrics.MaxOffset(), e.cfg.RubberBand)
	e.renderLive()
	e.session.addSample(ev.Y, ev.Time)
}

func (e *Engine) contactUp(ev PointerEvent) {
	if e.session == nil || ev.Contact != e.session.contact {
		return
	}
	deltaY := ev.Y - e.session.startY
	velocity := e.session.velocity()
	committed := clamp(e.session.rawOffset(ev.Y), 0, e.metrics.MaxOffset())
	e.session = nil

	target := e.releaseTarget(deltaY, velocity, committed)
	log.Debugf("bottomsheet: release dy=%.1f v=%.2f committed=%.1f -> %v", deltaY, velocity, committed, target)

	e.animateTo(target, velocity)
}

// abortSession ends the gesture at its last committed (non-rubber-banded)
// offset with zero velocity. Used for multi-contact and cancelled contacts.
func (e *Engine) abortSession() {
	if e.session == nil {
		return
	}
	last := e.session.samples[len(e.session.samples)-1]
	committed := clamp(e.session.rawOffset(last.y), 0, e.metrics.MaxOffset())
	e.session = nil
	e.offset = committed
	e.animateTo(e.metrics.Nearest(committed), 0)
}

// releaseTarget implements the tap / fling / nearest-state decision.
func (e *Engine) releaseTarget(deltaY, velocity, committed float64) State {
	if math.Abs(deltaY) <= e.cfg.TapThreshold {
		return e.tapTarget()
	}
	if math.Abs(velocity) > e.cfg.FlingThreshold {
		if velocity > 0 {
			// Moving down: one step toward collapsed.
			return e.metrics.Step(e.state, -1)
		}
		return e.metrics.Step(e.state, +1)
	}
	return e.metrics.Nearest(committed)
}

// tapTarget advances one step toward expanded, except at the top, where it
// drops back to the bottom state.
func (e *Engine) tapTarget() State {
	if e.state == e.metrics.Highest() {
		return e.metrics.Lowest()
	}
	return e.metrics.Step(e.state, +1)
}

// Toggle applies the tap rule without a gesture. This is what the toggle
// bus delivers when an external control requests an expand/collapse step.
func (e *Engine) Toggle() {
	if e.inert {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session != nil {
		return
	}
	e.animateTo(e.tapTarget(), 0)
}

// Snap animates to the named state. Requests for states dropped by the
// current geometry are ignored.
func (e *Engine) Snap(s State) {
	if e.inert {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session != nil {
		return
	}
	if !e.metrics.IsActive(s) {
		log.Debugf("bottomsheet: snap to inactive state %v ignored", s)
		return
	}
	e.animateTo(s, 0)
}

// Tick advances the active transition to now and renders the interpolated
// offset. Hosts call it once per frame while it returns true. If ticks stop
// arriving, the safety timer commits the pending state instead.
func (e *Engine) Tick(now time.Time) bool {
	if e.inert {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.trans == nil {
		return false
	}
	e.offset = e.trans.offsetAt(now)
	if e.trans.done(now) {
		e.commit(e.trans.gen)
		return false
	}
	e.renderLive()
	return true
}

// Stop abandons any live session and pending transition without rendering.
// The controller calls it on teardown; it is idempotent.
func (e *Engine) Stop() {
	if e.inert {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = nil
	e.supersede()
}

// animateTo starts a settle toward target. Caller holds e.mu.
func (e *Engine) animateTo(target State, velocity float64) {
	e.supersede()

	to := e.metrics.Offsets[target]
	from := e.offset
	if from == to {
		e.state = target
		e.renderCommitted()
		return
	}

	dur := transitionDuration(to-from, velocity, e.cfg)
	e.trans = &transition{
		target:   target,
		from:     from,
		to:       to,
		start:    e.clock.Now(),
		duration: dur,
		easing:   EaseOutCubic,
		gen:      e.gen,
	}

	// Safety net: if the host's frame loop never runs the transition to
	// completion, commit anyway so the engine cannot get stuck mid-settle.
	gen := e.gen
	e.safety = e.clock.AfterFunc(dur+e.cfg.transitionGrace(), func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.commit(gen)
	})
}

// supersede invalidates the active transition and safety timer. Any
// completion carrying an older generation is ignored afterwards.
func (e *Engine) supersede() {
	e.gen++
	e.trans = nil
	if e.safety != nil {
		e.safety.Stop()
		e.safety = nil
	}
}

// commit finalizes the transition with the given generation. Stale
// generations (superseded by a newer gesture or transition) are dropped.
func (e *Engine) commit(gen uint64) {
	if e.trans == nil || e.trans.gen != gen {
		return
	}
	e.state = e.trans.target
	e.offset = e.trans.to
	e.trans = nil
	if e.safety != nil {
		e.safety.Stop()
		e.safety = nil
	}
	e.renderCommitted()
}

// renderLive pushes the current offset and derived backdrop dimming during
// a drag or transition frame. Caller holds e.mu.
func (e *Engine) renderLive() {
	e.panel.SetOffset(e.offset)
	e.panel.SetState(e.state)
	op := e.backdropOpacity(e.offset)
	e.backdrop.SetOpacity(op)
	e.backdrop.SetVisible(op > 0)
}

// renderCommitted renders a resting state, including the host's sheet-open
// flag. Caller holds e.mu.
func (e *Engine) renderCommitted() {
	e.renderLive()
	if e.host != nil {
		e.host.SetSheetOpen(e.state != e.metrics.Lowest())
	}
}

// backdropOpacity maps an offset to dimming: fully transparent at the
// collapsed offset, MaxBackdropOpacity at fully expanded.
func (e *Engine) backdropOpacity(offset float64) float64 {
	max := e.metrics.MaxOffset()
	if max <= 0 {
		return 0
	}
	return clamp(e.cfg.MaxBackdropOpacity*(1-offset/max), 0, e.cfg.MaxBackdropOpacity)
}
