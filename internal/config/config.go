// Package config provides YAML-based tuning for the fishing game: screen and
// track layout, catch-bar and fish physics, bite timing, cutscene pacing,
// cheats and terminal input.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/go-fish/internal/core"
)

// Config contains all tuning for the fishing game.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Track    TrackConfig    `yaml:"track"`
	Physics  Physics        `yaml:"physics"`
	FishAI   FishAIConfig   `yaml:"fish_ai"`
	Bite     BiteConfig     `yaml:"bite"`
	Cutscene CutsceneConfig `yaml:"cutscene"`
	Cheats   CheatsConfig   `yaml:"cheats"`
	Input    InputConfig    `yaml:"input"`
}

// ScreenConfig is the logical resolution the physics runs in. The terminal
// front-end scales it down to rows and columns.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TrackConfig sizes the fishing track relative to the logical screen.
type TrackConfig struct {
	HeightRatio      float64 `yaml:"height_ratio"`       // Of screen height
	WidthRatio       float64 `yaml:"width_ratio"`        // Of track height
	XRatio           float64 `yaml:"x_ratio"`            // Of screen width
	CatchBarRatio    float64 `yaml:"catch_bar_ratio"`    // Of track height
	FishRatio        float64 `yaml:"fish_ratio"`         // Of track height
	ProgressBarRatio float64 `yaml:"progress_bar_ratio"` // Of track width
}

// Physics holds the per-tick constants of the reel-in challenge. Units are
// logical pixels and pixels per tick.
type Physics struct {
	CatchBarSpeedUp    float64 `yaml:"catch_bar_speed_up"` // Negative: upward impulse per reel tick
	CatchBarGravity    float64 `yaml:"catch_bar_gravity"`
	FishAccel          float64 `yaml:"fish_accel"`
	FishDrag           float64 `yaml:"fish_drag"`
	FishCaughtSlowdown float64 `yaml:"fish_caught_slowdown"`
	ProgressGain       float64 `yaml:"progress_gain"`
	ProgressLoss       float64 `yaml:"progress_loss"`
	InitialProgress    float64 `yaml:"initial_progress"`
}

// FishAIConfig bounds how long the fish holds a target before picking a new one.
type FishAIConfig struct {
	MinCooldown int `yaml:"min_cooldown"` // Ticks
	MaxCooldown int `yaml:"max_cooldown"` // Ticks
}

// BiteConfig bounds the random wait between casting and the bite.
type BiteConfig struct {
	MinDelayMS int `yaml:"min_delay_ms"`
	MaxDelayMS int `yaml:"max_delay_ms"`
}

// CutsceneConfig controls the win cutscene.
type CutsceneConfig struct {
	Enabled         bool    `yaml:"enabled"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Applied to every frame duration
	Path            string  `yaml:"path"`             // Optional YAML frame file; empty uses the built-in one
}

// CheatsConfig holds debug cheats.
type CheatsConfig struct {
	FastCatch           bool    `yaml:"fast_catch"`
	FastCatchMultiplier float64 `yaml:"fast_catch_multiplier"`
}

// InputConfig tunes the terminal input layer.
type InputConfig struct {
	// ReelHoldMS is how long a reel key press counts as "held". Terminals
	// only report key repeats, never key releases.
	ReelHoldMS int `yaml:"reel_hold_ms"`
}

// Layout is the track geometry in logical pixels.
type Layout struct {
	Track       core.Rect
	CatchBarH   int
	FishH       int
	ProgressBar core.Rect
}

// Layout derives the track geometry from the screen size and ratios.
func (c Config) Layout() Layout {
	trackH := int(float64(c.Screen.Height) * c.Track.HeightRatio)
	trackW := int(float64(trackH) * c.Track.WidthRatio)
	trackX := int(float64(c.Screen.Width) * c.Track.XRatio)
	trackY := (c.Screen.Height - trackH) / 2

	progressW := int(float64(trackW) * c.Track.ProgressBarRatio)

	return Layout{
		Track:       core.NewRect(trackX, trackY, trackW, trackH),
		CatchBarH:   int(float64(trackH) * c.Track.CatchBarRatio),
		FishH:       int(float64(trackH) * c.Track.FishRatio),
		ProgressBar: core.NewRect(trackX+trackW+15, trackY, progressW, trackH),
	}
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen %dx%d: %w", c.Screen.Width, c.Screen.Height, ErrInvalid)
	}
	l := c.Layout()
	if l.Track.W <= 0 || l.Track.H <= 0 {
		return fmt.Errorf("config: track %dx%d: %w", l.Track.W, l.Track.H, ErrInvalid)
	}
	if l.CatchBarH <= 0 || l.CatchBarH > l.Track.H {
		return fmt.Errorf("config: catch bar height %d for track %d: %w", l.CatchBarH, l.Track.H, ErrInvalid)
	}
	if l.FishH <= 0 || l.FishH > l.Track.H {
		return fmt.Errorf("config: fish height %d for track %d: %w", l.FishH, l.Track.H, ErrInvalid)
	}
	if c.Physics.FishDrag < 0 || c.Physics.FishDrag > 1 {
		return fmt.Errorf("config: fish_drag %.2f outside [0,1]: %w", c.Physics.FishDrag, ErrInvalid)
	}
	if c.FishAI.MinCooldown < 1 || c.FishAI.MaxCooldown < c.FishAI.MinCooldown {
		return fmt.Errorf("config: fish_ai cooldown [%d,%d]: %w", c.FishAI.MinCooldown, c.FishAI.MaxCooldown, ErrInvalid)
	}
	if c.Bite.MinDelayMS < 0 || c.Bite.MaxDelayMS < c.Bite.MinDelayMS {
		return fmt.Errorf("config: bite delay [%d,%d]: %w", c.Bite.MinDelayMS, c.Bite.MaxDelayMS, ErrInvalid)
	}
	if c.Cutscene.SpeedMultiplier <= 0 {
		return fmt.Errorf("config: cutscene speed_multiplier %.2f: %w", c.Cutscene.SpeedMultiplier, ErrInvalid)
	}
	if c.Cheats.FastCatchMultiplier <= 0 {
		return fmt.Errorf("config: fast_catch_multiplier %.2f: %w", c.Cheats.FastCatchMultiplier, ErrInvalid)
	}
	return nil
}
