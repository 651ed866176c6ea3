package bottomsheet

import "time"

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseOutCubic - smooth deceleration (good for UI)
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic - smooth acceleration and deceleration
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}
)

// transition is an in-flight animated settle toward a target state. The
// generation stamp lets the engine discard ticks and safety commits that
// belong to a superseded transition.
type transition struct {
	target   State
	from, to float64
	start    time.Time
	duration time.Duration
	easing   EasingFunc
	gen      uint64
}

// progress returns eased progress at now, capped at 1.
func (t *transition) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p >= 1 {
		return 1
	}
	if p < 0 {
		p = 0
	}
	return t.easing(p)
}

func (t *transition) offsetAt(now time.Time) float64 {
	return lerp(t.from, t.to, t.progress(now))
}

func (t *transition) done(now time.Time) bool {
	return now.Sub(t.start) >= t.duration
}

// transitionDuration derives the settle duration from the distance to cover
// and the release velocity: faster flings resolve faster, slow releases
// settle at a comfortable default speed.
func transitionDuration(distance, velocity float64, cfg Config) time.Duration {
	v := velocity
	if v < 0 {
		v = -v
	}
	if v < cfg.VelocityFloor {
		v = cfg.VelocityFloor
	}
	if distance < 0 {
		distance = -distance
	}
	d := time.Duration(distance/v) * time.Millisecond
	if d < cfg.minTransition() {
		return cfg.minTransition()
	}
	if d > cfg.maxTransition() {
		return cfg.maxTransition()
	}
	return d
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
