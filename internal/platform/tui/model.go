package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/go-fish/internal/core"
)

// RunResult tells the caller why the game loop ended.
type RunResult struct {
	OpenJournal bool // The player asked for the catch journal from the menu
}

// RunOptions tunes a run of the game loop.
type RunOptions struct {
	HoldWindow time.Duration // How long a reel key press keeps the reel engaged
	Resume     bool          // Continue the game as it is instead of resetting it
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        Game
	screen      *core.Screen
	config      core.RuntimeConfig
	keys        *KeyMapper
	hold        *HoldTracker
	inputFrame  core.InputFrame
	gameState   core.GameState
	now         func() time.Time
	resume      bool
	quitting    bool
	openJournal bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts RunOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		now:        time.Now,
		resume:     opts.Resume,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	if !m.resume {
		m.game.Reset(m.config)
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouse(msg, &m.inputFrame, m.hold)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.IsReelKey(msg) {
		m.hold.Press(m.now())
	}

	var frame core.InputFrame
	if m.keys.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Has(core.ActionJournal) && m.gameState.InMenu {
		m.openJournal = true
		m.quitting = true
		return m, tea.Quit
	}

	for a, on := range frame.Actions {
		if on {
			m.inputFrame.Set(a)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The game draws relative to
// whatever screen it is handed, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.hold.Held(now) {
		m.inputFrame.Set(core.ActionReel)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".gofish", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game and blocks until
// the player quits or asks for the journal.
func Run(game Game, cfg core.RuntimeConfig, opts RunOptions) (RunResult, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Left button press/release reels
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{OpenJournal: m.openJournal}, nil
}
