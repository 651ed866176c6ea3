package bottomsheet

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsSane(t *testing.T) {
	cfg := DefaultConfig()
	sanitized := cfg
	sanitized.sanitize()

	if cfg != sanitized {
		t.Errorf("defaults changed by sanitize:\n got %+v\nwant %+v", sanitized, cfg)
	}
}

func TestSanitizeClampsNonsense(t *testing.T) {
	def := DefaultConfig()

	cfg := Config{
		CollapsedFraction: 1.5,
		RubberBand:        2.0,
		VelocityWindow:    1,
		MinTransitionMs:   -5,
		MaxTransitionMs:   -5,
	}
	cfg.sanitize()

	if cfg.CollapsedFraction != def.CollapsedFraction {
		t.Errorf("CollapsedFraction = %v, want default %v", cfg.CollapsedFraction, def.CollapsedFraction)
	}
	if cfg.RubberBand != def.RubberBand {
		t.Errorf("RubberBand = %v, want default %v", cfg.RubberBand, def.RubberBand)
	}
	if cfg.VelocityWindow != def.VelocityWindow {
		t.Errorf("VelocityWindow = %v, want default %v", cfg.VelocityWindow, def.VelocityWindow)
	}
	if cfg.MinTransitionMs != def.MinTransitionMs {
		t.Errorf("MinTransitionMs = %v, want default %v", cfg.MinTransitionMs, def.MinTransitionMs)
	}
	if cfg.MaxTransitionMs < cfg.MinTransitionMs {
		t.Errorf("MaxTransitionMs %v below MinTransitionMs %v", cfg.MaxTransitionMs, cfg.MinTransitionMs)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.toml")
	body := []byte("tap_threshold = 14.0\nfling_threshold = 0.6\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.TapThreshold != 14 {
		t.Errorf("TapThreshold = %v, want 14", cfg.TapThreshold)
	}
	if cfg.FlingThreshold != 0.6 {
		t.Errorf("FlingThreshold = %v, want 0.6", cfg.FlingThreshold)
	}
	// Everything else keeps its default.
	if cfg.RubberBand != DefaultConfig().RubberBand {
		t.Errorf("RubberBand = %v, want default", cfg.RubberBand)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("tap_threshold = = 12"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}
