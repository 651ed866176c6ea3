package bottomsheet

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config holds every tunable of the sheet engine. Zero or nonsense values
// are pulled back to the defaults by sanitize, so a partial TOML file that
// only overrides a couple of fields behaves sensibly.
type Config struct {
	// Metrics: how state heights are derived from the viewport.
	CollapsedFraction  float64 `toml:"collapsed_fraction"`   // collapsed visible height as viewport fraction
	CollapsedMinHeight float64 `toml:"collapsed_min_height"` // absolute floor for collapsed visible height, px
	HalfFraction       float64 `toml:"half_fraction"`        // half visible height as viewport fraction
	StateMargin        float64 `toml:"state_margin"`         // minimum visible-height step between states, px
	MinStateGap        float64 `toml:"min_state_gap"`        // offsets closer than this collapse into one state, px

	// Gesture recognition.
	TapThreshold    float64 `toml:"tap_threshold"`    // max |deltaY| still counting as a tap, px
	FlingThreshold  float64 `toml:"fling_threshold"`  // velocity above which a release flings, px/ms
	RubberBand      float64 `toml:"rubber_band"`      // overscroll resistance, in (0,1)
	VelocityWindow  int     `toml:"velocity_window"`  // samples kept for velocity estimation
	HandoffDistance float64 `toml:"handoff_distance"` // downward travel before a content scroll becomes a sheet drag, px

	// Transitions.
	VelocityFloor     float64 `toml:"velocity_floor"`      // px/ms used for duration when released slowly
	MinTransitionMs   int     `toml:"min_transition_ms"`   // fastest allowed settle
	MaxTransitionMs   int     `toml:"max_transition_ms"`   // slowest allowed settle
	TransitionGraceMs int     `toml:"transition_grace_ms"` // safety-commit slack past the nominal duration

	// Backdrop.
	MaxBackdropOpacity float64 `toml:"max_backdrop_opacity"`

	// Lifecycle.
	ResizeDebounceMs      int `toml:"resize_debounce_ms"`
	OrientationDebounceMs int `toml:"orientation_debounce_ms"`
}

// DefaultConfig returns the tuning used by the stock control panel.
func DefaultConfig() Config {
	return Config{
		CollapsedFraction:  0.15,
		CollapsedMinHeight: 80,
		HalfFraction:       0.45,
		StateMargin:        60,
		MinStateGap:        50,

		TapThreshold:    10,
		FlingThreshold:  0.4,
		RubberBand:      0.25,
		VelocityWindow:  6,
		HandoffDistance: 12,

		VelocityFloor:     0.8,
		MinTransitionMs:   120,
		MaxTransitionMs:   400,
		TransitionGraceMs: 250,

		MaxBackdropOpacity: 0.5,

		ResizeDebounceMs:      150,
		OrientationDebounceMs: 100,
	}
}

// LoadConfig reads a TOML tuning file and fills unset or out-of-range
// values from the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %q", path)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config %q", path)
	}

	cfg.sanitize()
	return cfg, nil
}

// sanitize clamps out-of-range values back to the defaults.
func (c *Config) sanitize() {
	def := DefaultConfig()

	if c.CollapsedFraction <= 0 || c.CollapsedFraction >= 1 {
		c.CollapsedFraction = def.CollapsedFraction
	}
	if c.CollapsedMinHeight <= 0 {
		c.CollapsedMinHeight = def.CollapsedMinHeight
	}
	if c.HalfFraction <= 0 || c.HalfFraction >= 1 {
		c.HalfFraction = def.HalfFraction
	}
	if c.StateMargin < 0 {
		c.StateMargin = def.StateMargin
	}
	if c.MinStateGap <= 0 {
		c.MinStateGap = def.MinStateGap
	}
	if c.TapThreshold < 0 {
		c.TapThreshold = def.TapThreshold
	}
	if c.FlingThreshold <= 0 {
		c.FlingThreshold = def.FlingThreshold
	}
	if c.RubberBand <= 0 || c.RubberBand >= 1 {
		c.RubberBand = def.RubberBand
	}
	if c.VelocityWindow < 2 {
		c.VelocityWindow = def.VelocityWindow
	}
	if c.HandoffDistance <= 0 {
		c.HandoffDistance = def.HandoffDistance
	}
	if c.VelocityFloor <= 0 {
		c.VelocityFloor = def.VelocityFloor
	}
	if c.MinTransitionMs <= 0 {
		c.MinTransitionMs = def.MinTransitionMs
	}
	if c.MaxTransitionMs < c.MinTransitionMs {
		c.MaxTransitionMs = def.MaxTransitionMs
		if c.MaxTransitionMs < c.MinTransitionMs {
			c.MaxTransitionMs = c.MinTransitionMs
		}
	}
	if c.TransitionGraceMs < 0 {
		c.TransitionGraceMs = def.TransitionGraceMs
	}
	if c.MaxBackdropOpacity <= 0 || c.MaxBackdropOpacity > 1 {
		c.MaxBackdropOpacity = def.MaxBackdropOpacity
	}
	if c.ResizeDebounceMs <= 0 {
		c.ResizeDebounceMs = def.ResizeDebounceMs
	}
	if c.OrientationDebounceMs <= 0 {
		c.OrientationDebounceMs = def.OrientationDebounceMs
	}
}

func (c Config) minTransition() time.Duration {
	return time.Duration(c.MinTransitionMs) * time.Millisecond
}

func (c Config) maxTransition() time.Duration {
	return time.Duration(c.MaxTransitionMs) * time.Millisecond
}

func (c Config) transitionGrace() time.Duration {
	return time.Duration(c.TransitionGraceMs) * time.Millisecond
}

func (c Config) resizeDebounce() time.Duration {
	return time.Duration(c.ResizeDebounceMs) * time.Millisecond
}

func (c Config) orientationDebounce() time.Duration {
	return time.Duration(c.OrientationDebounceMs) * time.Millisecond
}
