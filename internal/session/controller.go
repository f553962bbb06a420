// Package session drives a play session: the menu, waiting for a bite, the
// reel-in challenge, the win cutscene and the win and lose screens. It owns
// the high score and decides which sounds and music the front-end plays.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/go-fish/internal/config"
	"github.com/vovakirdan/go-fish/internal/core"
	"github.com/vovakirdan/go-fish/internal/fish"
	"github.com/vovakirdan/go-fish/internal/minigame"
)

// Cutscene frames that start the follow-up sound cues.
const (
	cutsceneCue30Frame = 19
	cutsceneCue60Frame = 39
)

// ErrNilRandom is returned by New without a random source.
var ErrNilRandom = errors.New("random source is nil")

// Phase is the top-level screen the session is on.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseWaitingForBite
	PhaseFishing
	PhaseCutscene
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseWaitingForBite:
		return "waiting_for_bite"
	case PhaseFishing:
		return "fishing"
	case PhaseCutscene:
		return "cutscene"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Input is the player's intent for one tick.
type Input struct {
	Reel        bool // Held: pull the catch bar up
	Confirm     bool // Play, strike the bite, dismiss, try again
	Back        bool // Exit to menu from the lose screen
	Restart     bool // Fresh attempt from any phase
	ToggleCheat bool // Menu only: flip fast catch
	AnyKey      bool // Any key press; dismisses the win screen
}

// Attempt summarises a finished fishing attempt.
type Attempt struct {
	Fish         fish.Instance
	Caught       bool
	Score        int // Zero when the fish got away
	Ticks        int
	FastCatch    bool
	NewHighscore bool
}

// Frame is a snapshot of the session after a tick.
type Frame struct {
	Phase         Phase
	BiteShown     bool
	CutsceneFrame int
	Highscore     int
	NewHighscore  bool // The high score went up on this tick
	FastCatch     bool
	Track         Track

	HasChallenge bool
	Challenge    minigame.TickResult
	Fish         fish.Instance
	LastScore    int

	Finished *Attempt // Set only on the tick an attempt ends
}

// Deps are the controller's collaborators. Audio and Cutscene may be nil.
type Deps struct {
	Config   config.Config
	Audio    Audio
	Cutscene Cutscene
	Random   core.Random
}

// Controller owns one session's state. It is not safe for concurrent use.
type Controller struct {
	cfg      config.Config
	audio    Audio
	cutscene Cutscene
	rng      core.Random

	phase     Phase
	challenge *minigame.Challenge
	last      minigame.TickResult
	highscore int
	lastScore int
	fastCatch bool
	track     Track

	biteAt    time.Duration
	biteShown bool

	frameIndex  int
	lastFrameAt time.Duration
}

// New creates a controller in the menu with the main track playing.
func New(d Deps) (*Controller, error) {
	if d.Random == nil {
		return nil, fmt.Errorf("session: %w", ErrNilRandom)
	}
	if err := d.Config.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	// Catch bad geometry here rather than on the first strike.
	check := minigame.ParamsFromConfig(d.Config, fish.Instance{}, false)
	if _, err := minigame.New(check, core.NewRandom(0)); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	c := &Controller{
		cfg:       d.Config,
		audio:     d.Audio,
		cutscene:  d.Cutscene,
		rng:       d.Random,
		phase:     PhaseMenu,
		fastCatch: d.Config.Cheats.FastCatch,
	}
	if c.audio == nil {
		c.audio = nopAudio{}
	}
	if c.cutscene == nil {
		c.cutscene = noCutscene{}
	}
	c.setTrack(TrackMain)
	return c, nil
}

// Tick advances the session. now is the elapsed session time; it drives the
// bite timer and cutscene pacing.
func (c *Controller) Tick(now time.Duration, in Input) Frame {
	var out tickOutcome

	if in.Restart {
		c.restart()
		return c.frame(out)
	}

	switch c.phase {
	case PhaseMenu:
		c.tickMenu(now, in)
	case PhaseWaitingForBite:
		c.tickWaiting(now, in)
	case PhaseFishing:
		c.tickFishing(now, in, &out)
	case PhaseCutscene:
		c.tickCutscene(now, &out)
	case PhaseWon:
		c.tickWon(in)
	case PhaseLost:
		c.tickLost(now, in)
	}

	return c.frame(out)
}

// tickOutcome carries per-tick events into the frame.
type tickOutcome struct {
	newHighscore bool
	finished     *Attempt
}

func (c *Controller) tickMenu(now time.Duration, in Input) {
	if in.ToggleCheat {
		c.audio.Play(SoundClick)
		c.fastCatch = !c.fastCatch
	}
	if in.Confirm {
		c.audio.Play(SoundClick)
		c.startWaiting(now)
	}
}

func (c *Controller) tickWaiting(now time.Duration, in Input) {
	if c.biteShown && in.Confirm {
		c.startFishing()
		return
	}
	if !c.biteShown && now >= c.biteAt {
		c.biteShown = true
		c.audio.Play(SoundBite)
	}
}

func (c *Controller) tickFishing(now time.Duration, in Input, out *tickOutcome) {
	res := c.challenge.Step(minigame.Input{Reel: in.Reel, FastCatch: c.fastCatch})
	c.last = res

	if res.Transition == minigame.TransitionEnteredCatchingTension {
		c.setTrack(TrackTension)
	}

	switch res.ReelCue {
	case minigame.ReelCueLoop:
		if !c.audio.IsLooping(SoundReeling) {
			c.audio.Loop(SoundReeling)
		}
	case minigame.ReelCueStop:
		c.audio.Stop(SoundReeling)
	}

	switch res.Transition {
	case minigame.TransitionLost:
		c.phase = PhaseLost
		c.audio.Stop(SoundReeling)
		c.audio.Play(SoundLose)
		c.setTrack(TrackNone)
		out.finished = c.attempt(false, 0, false)
	case minigame.TransitionCutsceneTriggered:
		c.phase = PhaseCutscene
		c.frameIndex = 0
		c.lastFrameAt = now
		c.audio.Stop(SoundReeling)
		c.audio.Play(SoundCutscene1)
		c.setTrack(TrackNone)
	case minigame.TransitionWon:
		c.audio.Play(SoundSuccess)
		c.setTrack(TrackMain)
		c.enterWon(out)
	}
}

func (c *Controller) tickCutscene(now time.Duration, out *tickOutcome) {
	durations := c.cutscene.FrameDurations()
	if c.frameIndex < len(durations) && now-c.lastFrameAt <= durations[c.frameIndex] {
		return
	}

	c.frameIndex++
	c.lastFrameAt = now
	if c.frameIndex >= len(durations) {
		c.audio.Stop(SoundCutscene1)
		c.audio.Stop(SoundCutscene30)
		c.audio.Stop(SoundCutscene60)
		c.audio.Play(SoundSuccess)
		c.setTrack(TrackMain)
		c.enterWon(out)
		return
	}

	switch c.frameIndex {
	case cutsceneCue30Frame:
		c.audio.Play(SoundCutscene30)
	case cutsceneCue60Frame:
		c.audio.Play(SoundCutscene60)
	}
}

// enterWon scores the fish and offers it for the high score. Reeling keeps
// playing until the win screen is dismissed.
func (c *Controller) enterWon(out *tickOutcome) {
	c.phase = PhaseWon
	score := c.challenge.Fish().Score()
	hs := UpdateHighscore(c.highscore, score)
	c.highscore = hs.Highscore
	c.lastScore = score
	out.newHighscore = hs.Increased
	out.finished = c.attempt(true, score, hs.Increased)
}

func (c *Controller) tickWon(in Input) {
	if !in.Confirm && !in.AnyKey {
		return
	}
	if in.Confirm {
		c.audio.Play(SoundClick)
	}
	c.audio.Stop(SoundReeling)
	c.phase = PhaseMenu
	c.biteShown = false
}

func (c *Controller) tickLost(now time.Duration, in Input) {
	switch {
	case in.Confirm:
		c.audio.Play(SoundClick)
		c.audio.Stop(SoundLose)
		c.setTrack(TrackMain)
		c.startWaiting(now)
	case in.Back:
		c.audio.Play(SoundClick)
		c.audio.Stop(SoundLose)
		c.setTrack(TrackMain)
		c.phase = PhaseMenu
	}
}

func (c *Controller) startWaiting(now time.Duration) {
	c.phase = PhaseWaitingForBite
	delay := c.rng.IntRange(c.cfg.Bite.MinDelayMS, c.cfg.Bite.MaxDelayMS)
	c.biteAt = now + time.Duration(delay)*time.Millisecond
	c.biteShown = false
	c.audio.Play(SoundCasting)
}

func (c *Controller) startFishing() {
	c.newChallenge()
	c.setTrack(TrackMain)
	c.phase = PhaseFishing
}

// restart throws away whatever is happening and starts a fresh attempt.
func (c *Controller) restart() {
	c.audio.Stop(SoundReeling)
	c.audio.Stop(SoundLose)
	if c.phase == PhaseCutscene {
		c.audio.Stop(SoundCutscene1)
		c.audio.Stop(SoundCutscene30)
		c.audio.Stop(SoundCutscene60)
	}
	c.biteShown = false
	c.startFishing()
}

func (c *Controller) newChallenge() {
	v := fish.DrawRandomVariant(c.rng)
	f := fish.Instantiate(v, c.rng)

	p := minigame.ParamsFromConfig(c.cfg, f, c.cutsceneAvailable())
	// The session's own flag is passed per tick so the menu toggle wins.
	p.FastCatch = false

	ch, err := minigame.New(p, c.rng)
	if err != nil {
		// Parameters were validated in New; only the fish differs.
		panic(fmt.Sprintf("session: new challenge: %v", err))
	}
	c.challenge = ch
	c.last = ch.Last()
}

func (c *Controller) cutsceneAvailable() bool {
	return c.cfg.Cutscene.Enabled && c.cutscene.Available() && len(c.cutscene.FrameDurations()) > 0
}

func (c *Controller) setTrack(t Track) {
	if t == c.track {
		return
	}
	c.track = t
	c.audio.SetTrack(t)
}

func (c *Controller) attempt(caught bool, score int, newHigh bool) *Attempt {
	return &Attempt{
		Fish:         c.challenge.Fish(),
		Caught:       caught,
		Score:        score,
		Ticks:        c.last.Tick,
		FastCatch:    c.fastCatch,
		NewHighscore: newHigh,
	}
}

func (c *Controller) frame(out tickOutcome) Frame {
	f := Frame{
		Phase:         c.phase,
		BiteShown:     c.biteShown,
		CutsceneFrame: c.frameIndex,
		Highscore:     c.highscore,
		NewHighscore:  out.newHighscore,
		FastCatch:     c.fastCatch,
		Track:         c.track,
		LastScore:     c.lastScore,
		Finished:      out.finished,
	}
	if c.challenge != nil {
		f.HasChallenge = true
		f.Challenge = c.last
		f.Fish = c.challenge.Fish()
	}
	return f
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Highscore returns the best score this session.
func (c *Controller) Highscore() int { return c.highscore }

// FastCatch reports whether the fast catch cheat is on.
func (c *Controller) FastCatch() bool { return c.fastCatch }

// Challenge returns the current or most recent challenge, or nil before the
// first strike.
func (c *Controller) Challenge() *minigame.Challenge { return c.challenge }

// Config returns the configuration the session runs with.
func (c *Controller) Config() config.Config { return c.cfg }
