package bottomsheet

import (
	"sync"
	"time"

	"github.com/agiangrant/bottomsheet/internal/log"
)

// ControllerConfig bundles everything the lifecycle controller wires up.
// Panel and Backdrop are required; the rest degrade gracefully when absent.
type ControllerConfig struct {
	Panel    Panel
	Backdrop Backdrop
	Content  Content    // optional, enables the scroll handoff
	Host     Host       // optional
	Toggles  *ToggleBus // optional, external expand/collapse requests
	Clock    Clock      // optional
	Config   Config     // zero value selects DefaultConfig

	// HandleDragDisabled and ContentDragDisabled turn off the respective
	// input sources while leaving programmatic control working.
	HandleDragDisabled  bool
	ContentDragDisabled bool
}

// Controller owns one engine instance and its host wiring: initial layout,
// debounced viewport changes, the toggle subscription, and teardown. The
// caller keeps at most one live controller per panel and calls Close before
// creating another.
type Controller struct {
	engine *Engine
	cfg    ControllerConfig

	resizeDeb *Debouncer
	orientDeb *Debouncer
	handoff   *handoff

	mu           sync.Mutex
	started      bool
	closed       bool
	toggleCancel func()
	pendingVH    float64
	pendingPH    float64
}

// NewController builds the controller and its engine. If a required element
// is missing the whole instance is inert: Start and every input method are
// no-ops, logged once at warning level here.
func NewController(cc ControllerConfig) *Controller {
	clock := cc.Clock
	if clock == nil {
		clock = realClock{}
	}

	engine := NewEngine(EngineConfig{
		Panel:    cc.Panel,
		Backdrop: cc.Backdrop,
		Host:     cc.Host,
		Clock:    clock,
		Config:   cc.Config,
	})

	c := &Controller{
		engine:    engine,
		cfg:       cc,
		resizeDeb: NewDebouncer(clock, engine.cfg.resizeDebounce()),
		orientDeb: NewDebouncer(clock, engine.cfg.orientationDebounce()),
	}
	if cc.Content != nil && !cc.ContentDragDisabled {
		c.handoff = newHandoff(engine, cc.Content, engine.cfg.HandoffDistance)
	}
	return c
}

// Engine exposes the underlying state machine, mainly for hosts that drive
// Tick themselves.
func (c *Controller) Engine() *Engine { return c.engine }

// Inert reports whether required elements were missing at construction.
func (c *Controller) Inert() bool { return c.engine.Inert() }

// Start computes initial metrics from the given geometry, applies the
// initial state without animation, and subscribes to the toggle bus.
// Calling Start on a closed or already started controller is a no-op.
func (c *Controller) Start(viewportH, panelH float64) {
	if c.engine.Inert() {
		return
	}
	c.mu.Lock()
	if c.started || c.closed {
		c.mu.Unlock()
		return
	}
	c.started = true
	if c.cfg.Toggles != nil {
		c.toggleCancel = c.cfg.Toggles.Subscribe(c.engine.Toggle)
	}
	c.mu.Unlock()

	c.engine.SetViewport(viewportH, panelH)
}

// HandlePointer feeds drag-handle input to the engine.
func (c *Controller) HandlePointer(ev PointerEvent) {
	if !c.running() || c.cfg.HandleDragDisabled {
		return
	}
	c.engine.HandlePointer(ev)
}

// ContentPointer feeds content-area input through the scroll handoff.
func (c *Controller) ContentPointer(ev PointerEvent) {
	if !c.running() || c.handoff == nil {
		return
	}
	c.handoff.handle(ev)
}

// Resize coalesces viewport size changes; after the debounce window the
// metrics are recomputed and the current state re-applied unanimated.
func (c *Controller) Resize(viewportH, panelH float64) {
	if !c.running() {
		return
	}
	c.setPending(viewportH, panelH)
	c.resizeDeb.Trigger(c.applyPending)
}

// OrientationChange is Resize with a shorter debounce, for hosts that
// report rotation separately from resize.
func (c *Controller) OrientationChange(viewportH, panelH float64) {
	if !c.running() {
		return
	}
	c.setPending(viewportH, panelH)
	c.orientDeb.Trigger(c.applyPending)
}

// Tick advances any active transition. Returns true while more frames are
// needed.
func (c *Controller) Tick(now time.Time) bool {
	if !c.running() {
		return false
	}
	return c.engine.Tick(now)
}

// Close removes the toggle subscription, clears pending debounce timers and
// stops the engine. Idempotent; safe to call multiple times.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cancel := c.toggleCancel
	c.toggleCancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.resizeDeb.Cancel()
	c.orientDeb.Cancel()
	c.engine.Stop()
	log.Debugf("bottomsheet: controller closed")
}

func (c *Controller) running() bool {
	if c.engine.Inert() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started && !c.closed
}

func (c *Controller) setPending(viewportH, panelH float64) {
	c.mu.Lock()
	c.pendingVH = viewportH
	c.pendingPH = panelH
	c.mu.Unlock()
}

func (c *Controller) applyPending() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	vh, ph := c.pendingVH, c.pendingPH
	c.mu.Unlock()

	c.engine.SetViewport(vh, ph)
}
