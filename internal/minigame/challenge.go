// Package minigame implements the reel-in skill challenge: a player-driven
// catch bar fights gravity inside a vertical track while a hooked fish
// wanders it. Keeping the fish inside the bar fills the catch progress,
// letting it escape drains it.
//
// The challenge is a pure state machine. It performs no I/O; sound and music
// changes are reported through TickResult for the caller to realize.
package minigame

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/go-fish/internal/config"
	"github.com/vovakirdan/go-fish/internal/core"
	"github.com/vovakirdan/go-fish/internal/fish"
)

// Progress bounds, in percent.
const (
	MinProgress = 0.0
	MaxProgress = 100.0
)

// Construction errors. Nothing is validated again once a challenge runs.
var (
	ErrInvalidTrack   = errors.New("track must have positive size")
	ErrBarTooTall     = errors.New("catch bar taller than track")
	ErrFishTooTall    = errors.New("fish taller than track")
	ErrNilRandom      = errors.New("random source is nil")
	ErrInvalidPhysics = errors.New("physics out of range")
)

// Phase is the challenge's position in its state machine.
type Phase int

const (
	PhasePreHit            Phase = iota // Fish idle, waiting for the bar to reach it
	PhaseCatching                       // Fish inside the bar, progress rising
	PhaseLosing                         // Fish outside the bar, progress falling
	PhaseWon                            // Progress hit 100, no cutscene
	PhaseCutsceneTriggered              // Progress hit 100, cutscene follows
	PhaseLost                           // Progress hit 0 after the first hit
)

func (p Phase) String() string {
	switch p {
	case PhasePreHit:
		return "PreHit"
	case PhaseCatching:
		return "Catching"
	case PhaseLosing:
		return "Losing"
	case PhaseWon:
		return "Won"
	case PhaseCutsceneTriggered:
		return "CutsceneTriggered"
	case PhaseLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the phase ends the challenge.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseCutsceneTriggered || p == PhaseLost
}

// Transition is an edge taken during a single tick.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionEnteredCatchingTension
	TransitionWon
	TransitionLost
	TransitionCutsceneTriggered
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "None"
	case TransitionEnteredCatchingTension:
		return "EnteredCatchingTension"
	case TransitionWon:
		return "Won"
	case TransitionLost:
		return "Lost"
	case TransitionCutsceneTriggered:
		return "CutsceneTriggered"
	default:
		return "Unknown"
	}
}

// ReelCue tells the caller what to do with the looping reel sound.
type ReelCue int

const (
	ReelCueNone ReelCue = iota
	ReelCueLoop
	ReelCueStop
)

func (c ReelCue) String() string {
	switch c {
	case ReelCueLoop:
		return "Loop"
	case ReelCueStop:
		return "Stop"
	default:
		return "None"
	}
}

// Params configures a new challenge.
type Params struct {
	Track     core.Rect // Logical pixels
	CatchBarH int
	FishH     int
	Fish      fish.Instance
	Physics   config.Physics
	FishAI    config.FishAIConfig

	FastCatch           bool    // Cheat: multiply progress gain
	FastCatchMultiplier float64 // Zero means config.DebugFastCatchMultiplier
	CutsceneAvailable   bool    // Decides between Won and CutsceneTriggered
}

// ParamsFromConfig builds Params from the layout and tuning in cfg.
func ParamsFromConfig(cfg config.Config, f fish.Instance, cutscene bool) Params {
	l := cfg.Layout()
	return Params{
		Track:               l.Track,
		CatchBarH:           l.CatchBarH,
		FishH:               l.FishH,
		Fish:                f,
		Physics:             cfg.Physics,
		FishAI:              cfg.FishAI,
		FastCatch:           cfg.Cheats.FastCatch,
		FastCatchMultiplier: cfg.Cheats.FastCatchMultiplier,
		CutsceneAvailable:   cutscene,
	}
}

// Input is the player input for one tick.
type Input struct {
	Reel      bool // Reel held this tick
	FastCatch bool // Cheat toggled on by the session
}

// TickResult is what one Step produced.
type TickResult struct {
	Phase      Phase
	Transition Transition
	Colliding  bool
	BarY       float64
	FishY      float64
	Progress   float64
	ReelCue    ReelCue
	Tick       int
}

// Challenge is one fishing attempt.
type Challenge struct {
	track     core.Rect
	catchBarH int
	fishH     int
	fish      fish.Instance
	physics   config.Physics
	ai        config.FishAIConfig
	fastCatch bool
	fastMult  float64
	cutscene  bool
	rng       core.Random

	barY         float64 // Top of the catch bar
	barVel       float64
	fishY        float64 // Top of the fish
	fishVel      float64
	fishTargetY  float64
	fishCooldown int // Ticks until the fish picks a new target
	progress     float64
	firstHitMade bool
	phase        Phase
	tick         int
	last         TickResult
}

// New creates a challenge with the catch bar resting at the bottom of the
// track and the fish idle at a random height.
func New(p Params, rng core.Random) (*Challenge, error) {
	if p.Track.W <= 0 || p.Track.H <= 0 {
		return nil, fmt.Errorf("minigame: track %dx%d: %w", p.Track.W, p.Track.H, ErrInvalidTrack)
	}
	if p.CatchBarH <= 0 || p.CatchBarH > p.Track.H {
		return nil, fmt.Errorf("minigame: bar height %d, track height %d: %w", p.CatchBarH, p.Track.H, ErrBarTooTall)
	}
	if p.FishH <= 0 || p.FishH > p.Track.H {
		return nil, fmt.Errorf("minigame: fish height %d, track height %d: %w", p.FishH, p.Track.H, ErrFishTooTall)
	}
	if rng == nil {
		return nil, fmt.Errorf("minigame: new challenge: %w", ErrNilRandom)
	}
	if p.Physics.FishDrag < 0 || p.Physics.FishDrag > 1 {
		return nil, fmt.Errorf("minigame: fish drag %.2f: %w", p.Physics.FishDrag, ErrInvalidPhysics)
	}
	if p.FishAI.MinCooldown < 1 || p.FishAI.MaxCooldown < p.FishAI.MinCooldown {
		return nil, fmt.Errorf("minigame: fish cooldown [%d,%d]: %w", p.FishAI.MinCooldown, p.FishAI.MaxCooldown, ErrInvalidPhysics)
	}

	mult := p.FastCatchMultiplier
	if mult <= 0 {
		mult = config.DebugFastCatchMultiplier
	}

	c := &Challenge{
		track:     p.Track,
		catchBarH: p.CatchBarH,
		fishH:     p.FishH,
		fish:      p.Fish,
		physics:   p.Physics,
		ai:        p.FishAI,
		fastCatch: p.FastCatch,
		fastMult:  mult,
		cutscene:  p.CutsceneAvailable,
		rng:       rng,
		barY:      float64(p.Track.Y + p.Track.H - p.CatchBarH),
		progress:  p.Physics.InitialProgress,
		phase:     PhasePreHit,
	}
	c.fishY = float64(c.randomFishTop())
	c.fishTargetY = c.fishY
	c.last = c.snapshot(TransitionNone, ReelCueNone, c.colliding())
	return c, nil
}

// Step advances the challenge by one tick. Once a terminal phase is reached
// it keeps returning that snapshot with no transition.
func (c *Challenge) Step(in Input) TickResult {
	if c.phase.Terminal() {
		res := c.last
		res.Transition = TransitionNone
		res.ReelCue = ReelCueNone
		return res
	}
	c.tick++

	c.moveBar(in.Reel)

	if c.firstHitMade {
		c.steerFish()
	}

	colliding := c.colliding()

	c.fishVel *= c.physics.FishDrag
	if colliding && c.firstHitMade {
		c.fishY += c.fishVel * c.physics.FishCaughtSlowdown
	} else {
		c.fishY += c.fishVel
	}

	transition := TransitionNone
	cue := ReelCueStop
	if colliding {
		if !c.firstHitMade {
			c.firstHitMade = true
			transition = TransitionEnteredCatchingTension
		}
		gain := c.physics.ProgressGain * c.fish.ProgressGainModifier
		if c.fastCatch || in.FastCatch {
			gain *= c.fastMult
		}
		c.progress += gain
		cue = ReelCueLoop
		c.phase = PhaseCatching
	} else if c.firstHitMade {
		c.progress -= c.physics.ProgressLoss * c.fish.ProgressLossModifier
		c.phase = PhaseLosing
	}
	c.progress = core.ClampF(c.progress, MinProgress, MaxProgress)

	switch {
	case c.firstHitMade && c.progress <= MinProgress:
		c.phase = PhaseLost
		transition = TransitionLost
		cue = ReelCueStop
	case c.progress >= MaxProgress:
		if c.cutscene {
			c.phase = PhaseCutsceneTriggered
			transition = TransitionCutsceneTriggered
			cue = ReelCueStop
		} else {
			c.phase = PhaseWon
			transition = TransitionWon
		}
	}

	c.last = c.snapshot(transition, cue, colliding)
	return c.last
}

// moveBar applies reel impulse and gravity, then keeps the bar in the track.
func (c *Challenge) moveBar(reel bool) {
	if reel {
		c.barVel += c.physics.CatchBarSpeedUp
	}
	c.barVel += c.physics.CatchBarGravity
	c.barY += c.barVel

	top := float64(c.track.Y)
	bottom := float64(c.track.Y + c.track.H - c.catchBarH)
	if c.barY < top {
		c.barY = top
		c.barVel = 0
	}
	if c.barY > bottom {
		c.barY = bottom
		c.barVel = 0
	}
}

// steerFish runs the fish AI: hold a target for a random number of ticks,
// accelerate toward it.
func (c *Challenge) steerFish() {
	c.fishCooldown--
	if c.fishCooldown <= 0 {
		c.fishTargetY = float64(c.randomFishTop())
		c.fishCooldown = c.rng.IntRange(c.ai.MinCooldown, c.ai.MaxCooldown)
	}

	accel := c.physics.FishAccel * c.fish.SpeedModifier
	if c.fishY < c.fishTargetY {
		c.fishVel += accel
	} else {
		c.fishVel -= accel
	}
}

func (c *Challenge) randomFishTop() int {
	return c.track.Y + c.rng.IntRange(0, c.track.H-c.fishH)
}

func (c *Challenge) colliding() bool {
	return c.BarRect().Intersects(c.FishRect())
}

func (c *Challenge) snapshot(t Transition, cue ReelCue, colliding bool) TickResult {
	return TickResult{
		Phase:      c.phase,
		Transition: t,
		Colliding:  colliding,
		BarY:       c.barY,
		FishY:      c.fishY,
		Progress:   c.progress,
		ReelCue:    cue,
		Tick:       c.tick,
	}
}

// BarRect returns the catch bar hitbox. Positions are truncated to whole
// pixels.
func (c *Challenge) BarRect() core.Rect {
	return core.NewRect(c.track.X, int(c.barY), c.track.W, c.catchBarH)
}

// FishRect returns the fish hitbox.
func (c *Challenge) FishRect() core.Rect {
	return core.NewRect(c.track.X, int(c.fishY), c.track.W, c.fishH)
}

// Track returns the track rectangle.
func (c *Challenge) Track() core.Rect { return c.track }

// Fish returns the fish on the line.
func (c *Challenge) Fish() fish.Instance { return c.fish }

// FirstHitMade reports whether the bar has touched the fish yet.
func (c *Challenge) FirstHitMade() bool { return c.firstHitMade }

// Progress returns the catch progress in [0, 100].
func (c *Challenge) Progress() float64 { return c.progress }

// Phase returns the current phase.
func (c *Challenge) Phase() Phase { return c.phase }

// Last returns the most recent tick result, or the initial snapshot before
// the first Step.
func (c *Challenge) Last() TickResult { return c.last }
