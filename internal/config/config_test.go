package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultConfig().Layout()

	if l.Track.X != 128 || l.Track.Y != 90 || l.Track.W != 54 || l.Track.H != 540 {
		t.Errorf("Track = %+v, expected {128 90 54 540}", l.Track)
	}
	if l.CatchBarH != 108 {
		t.Errorf("CatchBarH = %d, expected 108", l.CatchBarH)
	}
	if l.FishH != 40 {
		t.Errorf("FishH = %d, expected 40", l.FishH)
	}
	if l.ProgressBar.X != 128+54+15 || l.ProgressBar.H != 540 {
		t.Errorf("ProgressBar = %+v", l.ProgressBar)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML differs from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  progress_gain: 0.8\nbite:\n  min_delay_ms: 0\n  max_delay_ms: 10\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Physics.ProgressGain != 0.8 {
		t.Errorf("ProgressGain = %f, expected 0.8", cfg.Physics.ProgressGain)
	}
	if cfg.Physics.CatchBarGravity != CatchBarGravity {
		t.Errorf("unset keys should keep defaults, gravity = %f", cfg.Physics.CatchBarGravity)
	}
	if cfg.Bite.MaxDelayMS != 10 {
		t.Errorf("MaxDelayMS = %d, expected 10", cfg.Bite.MaxDelayMS)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero screen", func(c *Config) { c.Screen.Height = 0 }},
		{"bar taller than track", func(c *Config) { c.Track.CatchBarRatio = 1.5 }},
		{"fish taller than track", func(c *Config) { c.Track.FishRatio = 2 }},
		{"drag above one", func(c *Config) { c.Physics.FishDrag = 1.2 }},
		{"inverted cooldown", func(c *Config) { c.FishAI.MinCooldown, c.FishAI.MaxCooldown = 80, 20 }},
		{"inverted bite", func(c *Config) { c.Bite.MinDelayMS, c.Bite.MaxDelayMS = 7000, 2000 }},
		{"zero cutscene speed", func(c *Config) { c.Cutscene.SpeedMultiplier = 0 }},
		{"zero cheat multiplier", func(c *Config) { c.Cheats.FastCatchMultiplier = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fishing.yaml")
	if err := os.WriteFile(path, []byte("cheats:\n  fast_catch: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if !cfg.Cheats.FastCatch {
		t.Error("expected fast_catch from custom file")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}
