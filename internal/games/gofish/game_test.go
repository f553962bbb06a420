package gofish

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/go-fish/internal/config"
	"github.com/vovakirdan/go-fish/internal/core"
	"github.com/vovakirdan/go-fish/internal/session"
	"github.com/vovakirdan/go-fish/internal/storage"
)

// fixedRandom draws the chosen variant, puts the fish at the very bottom of
// the track and takes the lower bound of every other range.
type fixedRandom struct {
	variant int
}

func (r *fixedRandom) Uniform(lo, hi float64) float64 { return lo }

func (r *fixedRandom) IntRange(lo, hi int) int {
	switch {
	case lo == 0 && hi == 9:
		return r.variant
	case lo == 0:
		return hi
	default:
		return lo
	}
}

type fixture struct {
	t       *testing.T
	g       *Game
	journal *storage.Store
	logs    *bytes.Buffer
}

func noCutsceneConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Cutscene.Enabled = false
	return cfg
}

func newFixture(t *testing.T, cfg config.Config) *fixture {
	t.Helper()

	journal, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { journal.Close() })

	logs := &bytes.Buffer{}
	g, err := New(Options{
		Config:    cfg,
		Journal:   journal,
		Logger:    log.New(logs),
		Random:    &fixedRandom{},
		ShowAudio: true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	return &fixture{t: t, g: g, journal: journal, logs: logs}
}

func (f *fixture) step(actions ...core.Action) session.Frame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	f.g.Step(in)
	return f.g.Frame()
}

// strike goes from the menu through the bite into fishing.
func (f *fixture) strike() {
	f.t.Helper()
	f.step(core.ActionConfirm, core.ActionAnyKey)
	for i := 0; i < 600 && !f.g.Frame().BiteShown; i++ {
		f.step()
	}
	if !f.g.Frame().BiteShown {
		f.t.Fatal("bite never shown")
	}
	if fr := f.step(core.ActionConfirm); fr.Phase != session.PhaseFishing {
		f.t.Fatalf("phase %v after striking, expected fishing", fr.Phase)
	}
}

// until steps with the given actions while the phase stays from.
func (f *fixture) until(from session.Phase, limit int, actions ...core.Action) session.Frame {
	f.t.Helper()
	for i := 0; i < limit; i++ {
		fr := f.step(actions...)
		if fr.Phase != from {
			return fr
		}
	}
	f.t.Fatalf("still in %v after %d ticks", from, limit)
	return session.Frame{}
}

func (f *fixture) render() string {
	screen := core.NewScreen(80, 24)
	f.g.Render(screen)
	return screen.String()
}

func assertContains(t *testing.T, screen string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(screen, want) {
			t.Errorf("screen missing %q:\n%s", want, screen)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Screen.Width = 0

	_, err := New(Options{Config: cfg})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() error = %v, expected ErrInvalid", err)
	}
}

func TestMenu(t *testing.T) {
	f := newFixture(t, noCutsceneConfig())

	st := f.g.State()
	if !st.InMenu || st.Phase != "menu" {
		t.Errorf("state = %+v, expected menu", st)
	}
	assertContains(t, f.render(), "start fishing", "C: fast catch [OFF]", "High score: 0", "music: main")

	f.step(core.ActionToggleCheat, core.ActionAnyKey)
	if !f.g.Frame().FastCatch {
		t.Fatal("fast catch should be on after toggling")
	}
	assertContains(t, f.render(), "C: fast catch [ON]", "FAST CATCH")
}

func TestWaitingAndFishingScreens(t *testing.T) {
	f := newFixture(t, noCutsceneConfig())

	f.step(core.ActionConfirm)
	assertContains(t, f.render(), "Waiting for a bite...")

	for i := 0; i < 600 && !f.g.Frame().BiteShown; i++ {
		f.step()
	}
	assertContains(t, f.render(), "A bite! Strike now!")

	if fr := f.step(core.ActionConfirm); fr.Phase != session.PhaseFishing {
		t.Fatalf("phase %v, expected fishing", fr.Phase)
	}
	f.step()
	assertContains(t, f.render(), "FISH ON!", "><>", "Progress:", "loop: reeling")
	if f.g.State().InMenu {
		t.Error("fishing should not report the menu")
	}
}

func TestWinRecordsJournal(t *testing.T) {
	f := newFixture(t, noCutsceneConfig())
	f.strike()

	fr := f.until(session.PhaseFishing, 2000)
	if fr.Phase != session.PhaseWon {
		t.Fatalf("phase %v, expected won", fr.Phase)
	}

	catches, err := f.journal.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(catches) != 1 {
		t.Fatalf("journal has %d catches, expected 1", len(catches))
	}
	c := catches[0]
	if c.Species != "Carp" || !c.Caught || c.Score != 66 || !c.NewHighscore {
		t.Errorf("journal entry = %+v", c)
	}

	if st := f.g.State(); st.Score != 66 || st.Highscore != 66 {
		t.Errorf("state = %+v, expected score and highscore 66", st)
	}

	assertContains(t, f.render(), "You caught a Carp!", "Score: 66", "NEW HIGH SCORE!", "High score: 66", "Difficulty 1")
	assertContains(t, f.logs.String(), "fish caught", "new highscore")
}

func TestResultScreenIgnoresEarlyKeys(t *testing.T) {
	f := newFixture(t, noCutsceneConfig())
	f.strike()
	f.until(session.PhaseFishing, 2000)

	// Key repeats right after landing the fish must not skip the screen.
	if fr := f.step(core.ActionReel, core.ActionConfirm, core.ActionAnyKey); fr.Phase != session.PhaseWon {
		t.Fatalf("phase %v, win screen dismissed during grace", fr.Phase)
	}

	for i := 0; i < 30; i++ {
		f.step()
	}
	if fr := f.step(core.ActionAnyKey); fr.Phase != session.PhaseMenu {
		t.Errorf("phase %v, expected menu after dismissing", fr.Phase)
	}
	if !f.g.State().InMenu {
		t.Error("state should report the menu")
	}
}

func TestLoseRecordsEscape(t *testing.T) {
	f := newFixture(t, noCutsceneConfig())
	f.strike()

	fr := f.until(session.PhaseFishing, 3000, core.ActionReel)
	if fr.Phase != session.PhaseLost {
		t.Fatalf("phase %v, expected lost", fr.Phase)
	}

	catches, err := f.journal.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(catches) != 1 || catches[0].Caught || catches[0].Score != 0 {
		t.Errorf("journal = %+v, expected one escape", catches)
	}

	assertContains(t, f.render(), "The Carp got away...", "B / Esc: back to menu")
	assertContains(t, f.logs.String(), "fish got away")

	for i := 0; i < 30; i++ {
		f.step()
	}
	if fr := f.step(core.ActionBack, core.ActionAnyKey); fr.Phase != session.PhaseMenu {
		t.Errorf("phase %v, expected menu", fr.Phase)
	}
}

func TestRestartFromFishing(t *testing.T) {
	f := newFixture(t, noCutsceneConfig())
	f.strike()
	f.step(core.ActionReel)

	fr := f.step(core.ActionRestart, core.ActionAnyKey)
	if fr.Phase != session.PhaseFishing || fr.Challenge.Tick != 0 {
		t.Errorf("restart: phase %v tick %d, expected a fresh challenge", fr.Phase, fr.Challenge.Tick)
	}
}

func TestNoJournal(t *testing.T) {
	g, err := New(Options{Config: noCutsceneConfig(), Random: &fixedRandom{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	f := &fixture{t: t, g: g}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	f.strike()
	if fr := f.until(session.PhaseFishing, 2000); fr.Phase != session.PhaseWon {
		t.Errorf("phase %v, expected won", fr.Phase)
	}
}

func TestCutsceneScreen(t *testing.T) {
	f := newFixture(t, config.DefaultConfig())
	f.strike()

	fr := f.until(session.PhaseFishing, 2000)
	if fr.Phase != session.PhaseCutscene {
		t.Fatalf("phase %v, expected cutscene", fr.Phase)
	}
	screen := f.render()
	first := f.g.Assets().Cutscene().Frame(0)
	for _, line := range first.Lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			assertContains(t, screen, trimmed)
			break
		}
	}

	fr = f.until(session.PhaseCutscene, 5000)
	if fr.Phase != session.PhaseWon || fr.Finished == nil {
		t.Errorf("after cutscene: %+v", fr)
	}
}
