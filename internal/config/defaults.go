package config

import (
	_ "embed"
)

//go:embed defaults/fishing.yaml
var defaultFishingYAML []byte

// Physics defaults, in logical pixels per tick.
const (
	CatchBarSpeedUp          = -0.5
	CatchBarGravity          = 0.25
	FishAccel                = 0.2
	FishDrag                 = 0.95
	FishCaughtSlowdown       = 0.5 // 0.5 = fish moves at half speed while inside the bar
	ProgressGain             = 0.4
	ProgressLoss             = 0.2
	InitialProgress          = 10.0
	DebugFastCatchMultiplier = 5.0
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
		},
		Track: TrackConfig{
			HeightRatio:      0.75,
			WidthRatio:       0.1,
			XRatio:           0.1,
			CatchBarRatio:    0.2,
			FishRatio:        0.075,
			ProgressBarRatio: 0.6,
		},
		Physics: Physics{
			CatchBarSpeedUp:    CatchBarSpeedUp,
			CatchBarGravity:    CatchBarGravity,
			FishAccel:          FishAccel,
			FishDrag:           FishDrag,
			FishCaughtSlowdown: FishCaughtSlowdown,
			ProgressGain:       ProgressGain,
			ProgressLoss:       ProgressLoss,
			InitialProgress:    InitialProgress,
		},
		FishAI: FishAIConfig{
			MinCooldown: 20,
			MaxCooldown: 80,
		},
		Bite: BiteConfig{
			MinDelayMS: 2000,
			MaxDelayMS: 7000,
		},
		Cutscene: CutsceneConfig{
			Enabled:         true,
			SpeedMultiplier: 0.75,
		},
		Cheats: CheatsConfig{
			FastCatch:           false,
			FastCatchMultiplier: DebugFastCatchMultiplier,
		},
		Input: InputConfig{
			ReelHoldMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `gofish config`.
func DefaultYAML() []byte {
	return defaultFishingYAML
}
