package bottomsheet

// gestureSource tells the engine where a drag session came from. Content
// sessions are created by the scroll handoff; handle sessions come straight
// from the drag handle or header.
type gestureSource uint8

const (
	sourceHandle gestureSource = iota
	sourceContent
)

// gestureSample is one observed contact position.
type gestureSample struct {
	y float64
	t int64 // ms
}

// gestureSession tracks a single active contact from down to release. It is
// owned by the engine and discarded on release or multi-contact abort; no
// gesture state survives across gestures.
type gestureSession struct {
	startOffset float64 // committed offset when the contact started
	startY      float64
	contact     int
	source      gestureSource

	samples  []gestureSample
	capacity int
}

func newGestureSession(startOffset, startY float64, t int64, contact int, source gestureSource, window int) *gestureSession {
	s := &gestureSession{
		startOffset: startOffset,
		startY:      startY,
		contact:     contact,
		source:      source,
		capacity:    window,
		samples:     make([]gestureSample, 0, window),
	}
	s.addSample(startY, t)
	return s
}

// addSample appends a position sample, evicting the oldest once the window
// is full.
func (s *gestureSession) addSample(y float64, t int64) {
	if len(s.samples) == s.capacity {
		copy(s.samples, s.samples[1:])
		s.samples = s.samples[:len(s.samples)-1]
	}
	s.samples = append(s.samples, gestureSample{y: y, t: t})
}

// rawOffset is the un-rubber-banded offset implied by the contact position.
func (s *gestureSession) rawOffset(y float64) float64 {
	return s.startOffset + (y - s.startY)
}

// velocity estimates the contact's vertical velocity in px/ms across the
// sample window. Zero when fewer than two samples exist or no time elapsed.
func (s *gestureSession) velocity() float64 {
	if len(s.samples) < 2 {
		return 0
	}
	first := s.samples[0]
	last := s.samples[len(s.samples)-1]
	dt := last.t - first.t
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / float64(dt)
}

// rubberBand applies overscroll resistance past [0, max]. Movement beyond a
// bound still tracks the finger, at a fraction of its rate.
func rubberBand(raw, max, resistance float64) float64 {
	if raw < 0 {
		return raw * resistance
	}
	if raw > max {
		return max + (raw-max)*resistance
	}
	return raw
}
