package bottomsheet

import "testing"

func TestRubberBand(t *testing.T) {
	const max, res = 560.0, 0.25

	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"zero", 0, 0},
		{"identity low", 100, 100},
		{"identity high", 560, 560},
		{"past top", -100, -25},
		{"past bottom", 660, 585},
		{"far past bottom", 960, 660},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rubberBand(tt.raw, max, res); got != tt.want {
				t.Errorf("rubberBand(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRubberBandMonotonic(t *testing.T) {
	const max, res = 400.0, 0.25

	prev := rubberBand(-500, max, res)
	for raw := -499.0; raw <= 900; raw++ {
		cur := rubberBand(raw, max, res)
		if cur < prev {
			t.Fatalf("rubber band not monotonic at raw=%v: %v < %v", raw, cur, prev)
		}
		prev = cur
	}
}

func TestGestureVelocity(t *testing.T) {
	tests := []struct {
		name    string
		samples []gestureSample
		want    float64
	}{
		{
			name:    "single sample",
			samples: []gestureSample{{y: 100, t: 0}},
			want:    0,
		},
		{
			name:    "two samples",
			samples: []gestureSample{{y: 100, t: 0}, {y: 60, t: 20}},
			want:    -2,
		},
		{
			name:    "zero elapsed",
			samples: []gestureSample{{y: 100, t: 50}, {y: 60, t: 50}},
			want:    0,
		},
		{
			name:    "negative elapsed",
			samples: []gestureSample{{y: 100, t: 50}, {y: 60, t: 40}},
			want:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newGestureSession(0, tt.samples[0].y, tt.samples[0].t, 1, sourceHandle, 6)
			for _, smp := range tt.samples[1:] {
				s.addSample(smp.y, smp.t)
			}
			if got := s.velocity(); got != tt.want {
				t.Errorf("velocity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGestureWindowEviction(t *testing.T) {
	s := newGestureSession(0, 0, 0, 1, sourceHandle, 6)
	for i := 1; i <= 9; i++ {
		s.addSample(float64(i*10), int64(i*16))
	}

	if len(s.samples) != 6 {
		t.Fatalf("window length = %d, want 6", len(s.samples))
	}
	// Oldest surviving sample is the 4th append (y=40, t=64).
	if s.samples[0].y != 40 || s.samples[0].t != 64 {
		t.Errorf("oldest sample = %+v, want y=40 t=64", s.samples[0])
	}
	if s.samples[5].y != 90 || s.samples[5].t != 144 {
		t.Errorf("newest sample = %+v, want y=90 t=144", s.samples[5])
	}

	// Velocity uses only the surviving window.
	want := (90.0 - 40.0) / float64(144-64)
	if got := s.velocity(); got != want {
		t.Errorf("velocity() = %v, want %v", got, want)
	}
}

func TestGestureRawOffset(t *testing.T) {
	s := newGestureSession(320, 500, 0, 1, sourceContent, 6)

	if got := s.rawOffset(530); got != 350 {
		t.Errorf("rawOffset(530) = %v, want 350", got)
	}
	if got := s.rawOffset(400); got != 220 {
		t.Errorf("rawOffset(400) = %v, want 220", got)
	}
}
