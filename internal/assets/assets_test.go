package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/go-fish/internal/config"
	"github.com/vovakirdan/go-fish/internal/core"
	"github.com/vovakirdan/go-fish/internal/fish"
)

func TestEmbeddedSpritesCoverCatalogue(t *testing.T) {
	lib, err := Load(config.DefaultConfig().Cutscene)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var keys []string
	for _, v := range fish.Variants() {
		keys = append(keys, v.AssetKey)
	}
	if missing := lib.Missing(keys); len(missing) != 0 {
		t.Errorf("missing fish sprites: %v", missing)
	}
	for _, k := range []string{KeyWaiting, KeyBite, KeyMenuTitle} {
		if !lib.Has(k) {
			t.Errorf("missing screen sprite %q", k)
		}
	}

	salmon := lib.Sprite("fih")
	if salmon.Missing || salmon.Color != core.ColorRed || salmon.Height() != 3 {
		t.Errorf("salmon sprite = %+v", salmon)
	}
}

func TestMissingSpritePlaceholder(t *testing.T) {
	lib, err := Load(config.CutsceneConfig{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	s := lib.Sprite("fish_kraken_img")
	if !s.Missing {
		t.Fatal("expected a placeholder")
	}
	if s.Lines[1] != "| Missing: fish_kraken_img |" {
		t.Errorf("placeholder text = %q", s.Lines[1])
	}
	if s.Width() != len(s.Lines[0]) {
		t.Errorf("placeholder not rectangular: %v", s.Lines)
	}

	if got := lib.Missing([]string{"zeta", "fih", "alpha"}); len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("Missing() = %v, expected [alpha zeta]", got)
	}
}

func TestEmbeddedCutscene(t *testing.T) {
	lib, err := Load(config.DefaultConfig().Cutscene)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cs := lib.Cutscene()
	if !cs.Available() {
		t.Fatal("embedded cutscene should be available")
	}
	// The frame 39 sound cue needs at least 40 frames.
	if cs.Len() < 40 {
		t.Errorf("cutscene has %d frames, expected at least 40", cs.Len())
	}
	// default 100ms at speed 0.75
	if d := cs.FrameDurations()[0]; d != 75*time.Millisecond {
		t.Errorf("first frame duration %v, expected 75ms", d)
	}
}

func TestCutsceneDisabled(t *testing.T) {
	lib, err := Load(config.CutsceneConfig{Enabled: false, SpeedMultiplier: 1})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cs := lib.Cutscene()
	if cs.Available() || cs.Len() != 0 || cs.FrameDurations() != nil {
		t.Error("disabled cutscene should be unavailable")
	}
	if f := cs.Frame(3); f.Lines != nil {
		t.Errorf("nil cutscene frame = %+v", f)
	}
}

func TestParseCutscene(t *testing.T) {
	data := []byte(`
name: test
default_duration_ms: 200
frames:
  - art: "a"
    repeat: 2
  - art: "b\nbb"
    duration_ms: 150
  - art: "c"
    duration_ms: 10
    repeat: 0
`)
	cs, err := ParseCutscene(data, 0.75)
	if err != nil {
		t.Fatalf("ParseCutscene() error: %v", err)
	}

	expected := []time.Duration{150 * time.Millisecond, 150 * time.Millisecond, 112 * time.Millisecond, 7 * time.Millisecond}
	got := cs.FrameDurations()
	if len(got) != len(expected) {
		t.Fatalf("durations = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("frame %d duration %v, expected %v", i, got[i], expected[i])
		}
	}

	if f := cs.Frame(2); len(f.Lines) != 2 || f.Lines[1] != "bb" {
		t.Errorf("frame 2 lines = %v", f.Lines)
	}
	if f := cs.Frame(5); f.Lines[0] != "a" {
		t.Errorf("frame index should wrap, got %v", f.Lines)
	}
}

func TestParseCutsceneErrors(t *testing.T) {
	if _, err := ParseCutscene([]byte("name: empty\nframes: []\n"), 1); !errors.Is(err, ErrNoFrames) {
		t.Errorf("empty cutscene: error %v, expected ErrNoFrames", err)
	}
	if _, err := ParseCutscene([]byte("frames: [unclosed"), 1); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadCutsceneFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cutscene.yaml")
	if err := os.WriteFile(path, []byte("frames:\n  - art: x\n    duration_ms: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := Load(config.CutsceneConfig{Enabled: true, SpeedMultiplier: 1, Path: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if d := lib.Cutscene().FrameDurations(); len(d) != 1 || d[0] != 40*time.Millisecond {
		t.Errorf("durations = %v, expected [40ms]", d)
	}

	_, err = Load(config.CutsceneConfig{Enabled: true, SpeedMultiplier: 1, Path: filepath.Join(dir, "nope.yaml")})
	if err == nil {
		t.Error("expected error for a missing cutscene file")
	}
}
