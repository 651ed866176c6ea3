package bottomsheet

import "math"

// State is a named discrete resting position for the sheet, ordered by
// increasing visible panel area.
type State uint8

const (
	StateCollapsed State = iota
	StateHalf
	StateExpanded
)

// candidateStates is the fixed semantic order metrics are built in.
var candidateStates = []State{StateCollapsed, StateHalf, StateExpanded}

func (s State) String() string {
	switch s {
	case StateCollapsed:
		return "collapsed"
	case StateHalf:
		return "half"
	case StateExpanded:
		return "expanded"
	}
	return "unknown"
}

// Metrics maps states to vertical pixel offsets for one viewport/panel
// geometry. Offset is the distance the panel is translated down from fully
// expanded, so StateExpanded is always 0 and StateCollapsed carries the
// largest offset. Metrics values are immutable once computed; a resize
// produces a new one.
type Metrics struct {
	ViewportHeight float64
	PanelHeight    float64

	// Offsets holds an entry for every active state.
	Offsets map[State]float64

	// Active lists the distinguishable states in increasing visible-area
	// order. States whose offset would sit within the minimum gap of an
	// already-accepted state are excluded; the two bound states are always
	// present.
	Active []State
}

// computeMetrics derives the offset table for the given geometry. Inputs
// must be validated by the caller (see Engine.SetViewport).
func computeMetrics(viewportH, panelH float64, cfg Config) Metrics {
	collapsedVisible := clamp(cfg.CollapsedFraction*viewportH, cfg.CollapsedMinHeight, panelH)
	halfVisible := clamp(
		math.Max(collapsedVisible+cfg.StateMargin, cfg.HalfFraction*viewportH),
		collapsedVisible, panelH,
	)

	offsets := map[State]float64{
		StateCollapsed: panelH - collapsedVisible,
		StateHalf:      panelH - halfVisible,
		StateExpanded:  0, // pinned
	}

	m := Metrics{
		ViewportHeight: viewportH,
		PanelHeight:    panelH,
		Offsets:        make(map[State]float64, len(candidateStates)),
	}

	// Walk candidates in semantic order, keeping a state only when its
	// offset is far enough from the last accepted one. The bounds are
	// always kept; intermediates must also clear the gap to expanded,
	// which is forced in at the end.
	lastOffset := math.Inf(1)
	for _, s := range candidateStates {
		off := offsets[s]
		switch s {
		case StateCollapsed, StateExpanded:
			// always active
		default:
			if math.Abs(lastOffset-off) < cfg.MinStateGap || off < cfg.MinStateGap {
				continue
			}
		}
		m.Active = append(m.Active, s)
		m.Offsets[s] = off
		lastOffset = off
	}

	return m
}

// fallbackMetrics is the conservative table used when no valid geometry has
// ever been seen: a single resting position at offset zero.
func fallbackMetrics() Metrics {
	return Metrics{
		Offsets: map[State]float64{StateCollapsed: 0},
		Active:  []State{StateCollapsed},
	}
}

// MaxOffset returns the collapsed state's offset, the upper bound for the
// committed offset range.
func (m Metrics) MaxOffset() float64 {
	return m.Offsets[m.Lowest()]
}

// Lowest returns the active state with the least visible area.
func (m Metrics) Lowest() State {
	return m.Active[0]
}

// Highest returns the active state with the most visible area.
func (m Metrics) Highest() State {
	return m.Active[len(m.Active)-1]
}

// IsActive reports whether s survived the gap filter for this geometry.
func (m Metrics) IsActive(s State) bool {
	_, ok := m.Offsets[s]
	return ok
}

// Nearest returns the active state whose offset is numerically closest to
// the given committed offset.
func (m Metrics) Nearest(offset float64) State {
	best := m.Active[0]
	bestDist := math.Abs(m.Offsets[best] - offset)
	for _, s := range m.Active[1:] {
		if d := math.Abs(m.Offsets[s] - offset); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// Step returns the active state dir steps away from s along the visible-area
// order, clamped to the list bounds. dir > 0 moves toward expanded.
func (m Metrics) Step(s State, dir int) State {
	idx := m.indexOf(s)
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.Active)-1 {
		idx = len(m.Active) - 1
	}
	return m.Active[idx]
}

func (m Metrics) indexOf(s State) int {
	for i, a := range m.Active {
		if a == s {
			return i
		}
	}
	// Caller drifted out of the active set (shouldn't happen; SetViewport
	// re-homes the current state). Treat as the bottom state.
	return 0
}

func validGeometry(viewportH, panelH float64) bool {
	if math.IsNaN(viewportH) || math.IsInf(viewportH, 0) || viewportH <= 0 {
		return false
	}
	if math.IsNaN(panelH) || math.IsInf(panelH, 0) || panelH <= 0 {
		return false
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo = hi
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
