// Package gofish is the terminal front-end of the fishing game. It drives a
// session.Controller from platform input, records finished attempts in the
// catch journal and draws every phase into a core.Screen.
package gofish

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/go-fish/internal/assets"
	"github.com/vovakirdan/go-fish/internal/audio"
	"github.com/vovakirdan/go-fish/internal/config"
	"github.com/vovakirdan/go-fish/internal/core"
	"github.com/vovakirdan/go-fish/internal/session"
	"github.com/vovakirdan/go-fish/internal/storage"
)

// dismissGrace is how long the result screens ignore key presses. Terminals
// keep sending repeats of the reel key after the fish is landed, and those
// must not skip the screen.
const dismissGrace = 400 * time.Millisecond

// shakeEvery is the number of ticks between track shake offsets.
const shakeEvery = 6

// Options configures a Game.
type Options struct {
	Config    config.Config
	Assets    *assets.Library // Nil loads the embedded art
	Mixer     *audio.Mixer    // Nil creates a silent mixer
	Journal   *storage.Store  // Nil disables journaling
	Logger    *log.Logger     // Nil discards
	Random    core.Random     // Nil seeds from RuntimeConfig.Seed on Reset
	ShowAudio bool            // Draw the audio cue line
}

// Game implements tui.Game for the fishing session.
type Game struct {
	cfg       config.Config
	lib       *assets.Library
	mixer     *audio.Mixer
	journal   *storage.Store
	logger    *log.Logger
	random    core.Random
	showAudio bool

	runtime   core.RuntimeConfig
	ctrl      *session.Controller
	frame     session.Frame
	tickCount int
	enteredAt int // Tick the current phase started on
	attempt   *session.Attempt
	shakeRng  core.Random
	shakeX    int
}

// New creates a game. The config is validated and the art loaded here so
// that Reset cannot fail.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("gofish: %w", err)
	}

	lib := opts.Assets
	if lib == nil {
		var err error
		lib, err = assets.Load(opts.Config.Cutscene)
		if err != nil {
			return nil, fmt.Errorf("gofish: %w", err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	mixer := opts.Mixer
	if mixer == nil {
		mixer = audio.NewMixer(audio.Options{Logger: logger})
	}

	g := &Game{
		cfg:       opts.Config,
		lib:       lib,
		mixer:     mixer,
		journal:   opts.Journal,
		logger:    logger,
		random:    opts.Random,
		showAudio: opts.ShowAudio,
	}
	g.Reset(core.DefaultConfig())
	if g.ctrl == nil {
		return nil, fmt.Errorf("gofish: session could not be created")
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "gofish"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Go Fish"
}

// Reset starts a fresh session in the menu with a zero high score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	rng := g.random
	if rng == nil {
		rng = core.NewRandom(cfg.Seed)
	}

	ctrl, err := session.New(session.Deps{
		Config:   g.cfg,
		Audio:    g.mixer,
		Cutscene: g.lib.Cutscene(),
		Random:   rng,
	})
	if err != nil {
		g.logger.Error("cannot start session", "error", err)
		return
	}

	g.runtime = cfg
	g.ctrl = ctrl
	g.frame = session.Frame{Phase: ctrl.Phase(), Track: g.mixer.Track()}
	g.tickCount = 0
	g.enteredAt = 0
	g.attempt = nil
	g.shakeRng = core.NewRandom(cfg.Seed + 1)
	g.shakeX = 0
}

// now converts the tick count into session time.
func (g *Game) now() time.Duration {
	return time.Duration(g.tickCount) * time.Second / time.Duration(g.runtime.TickRate)
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++

	input := session.Input{
		Reel:        in.Has(core.ActionReel),
		Confirm:     in.Has(core.ActionConfirm),
		Back:        in.Has(core.ActionBack),
		Restart:     in.Has(core.ActionRestart),
		ToggleCheat: in.Has(core.ActionToggleCheat),
		AnyKey:      in.Has(core.ActionAnyKey),
	}
	if g.inGrace() {
		input.Confirm = false
		input.Back = false
		input.AnyKey = false
	}

	prev := g.frame.Phase
	g.frame = g.ctrl.Tick(g.now(), input)
	if g.frame.Phase != prev {
		g.enteredAt = g.tickCount
		g.logger.Debug("phase", "from", prev, "to", g.frame.Phase)
	}
	if g.frame.Phase != session.PhaseWon && g.frame.Phase != session.PhaseLost {
		g.attempt = nil
	}

	if a := g.frame.Finished; a != nil {
		g.attempt = a
		g.finish(*a)
	}

	g.updateShake()

	return core.StepResult{State: g.State()}
}

// inGrace reports whether a result screen was entered too recently to be
// dismissed.
func (g *Game) inGrace() bool {
	if g.frame.Phase != session.PhaseWon && g.frame.Phase != session.PhaseLost {
		return false
	}
	graceTicks := int(dismissGrace * time.Duration(g.runtime.TickRate) / time.Second)
	return g.tickCount-g.enteredAt <= graceTicks
}

// finish logs a finished attempt and writes it to the journal.
func (g *Game) finish(a session.Attempt) {
	if a.Caught {
		g.logger.Info("fish caught",
			"fish", a.Fish.Name,
			"weight", a.Fish.Weight,
			"size", a.Fish.Size,
			"score", a.Score,
			"ticks", a.Ticks,
		)
	} else {
		g.logger.Info("fish got away", "fish", a.Fish.Name, "ticks", a.Ticks)
	}
	if a.NewHighscore {
		g.logger.Info("new highscore", "score", a.Score)
	}

	if g.journal == nil {
		return
	}
	_, err := g.journal.Record(storage.Catch{
		Species:      a.Fish.Name,
		Difficulty:   a.Fish.Difficulty,
		Weight:       a.Fish.Weight,
		Size:         a.Fish.Size,
		Caught:       a.Caught,
		Score:        a.Score,
		Ticks:        a.Ticks,
		FastCatch:    a.FastCatch,
		NewHighscore: a.NewHighscore,
	})
	if err != nil {
		g.logger.Warn("cannot record catch", "error", err)
	}
}

// updateShake picks a new track offset every few ticks while the fish is
// inside the bar.
func (g *Game) updateShake() {
	if g.frame.Phase != session.PhaseFishing || !g.frame.Challenge.Colliding {
		g.shakeX = 0
		return
	}
	if g.tickCount%shakeEvery == 0 {
		g.shakeX = g.shakeRng.IntRange(-1, 1)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.frame.Phase.String(),
		Score:     g.frame.LastScore,
		Highscore: g.frame.Highscore,
		InMenu:    g.frame.Phase == session.PhaseMenu,
	}
}

// Frame returns the last session snapshot.
func (g *Game) Frame() session.Frame {
	return g.frame
}

// Assets returns the art library in use.
func (g *Game) Assets() *assets.Library {
	return g.lib
}
