package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/go-fish/internal/assets"
	"github.com/vovakirdan/go-fish/internal/audio"
	"github.com/vovakirdan/go-fish/internal/config"
	"github.com/vovakirdan/go-fish/internal/core"
	"github.com/vovakirdan/go-fish/internal/fish"
	"github.com/vovakirdan/go-fish/internal/games/gofish"
	"github.com/vovakirdan/go-fish/internal/platform/tui"
	"github.com/vovakirdan/go-fish/internal/storage"
)

var (
	flagFastCatch bool
	flagExport    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start fishing",
	Long: `Start a fishing session.

Controls:
  Enter/Space/click    - Start, strike the bite, try again
  Space/W/Up/mouse     - Hold to reel the catch bar up
  C                    - Toggle fast catch (menu)
  Tab                  - Catch journal (menu)
  B/Esc                - Back to menu (after losing a fish)
  R                    - Restart with a fresh fish
  Ctrl+S               - Save a screenshot
  Q/Ctrl+C             - Quit

Examples:
  gofish play
  gofish play --fast-catch
  gofish play --export catches.csv
  gofish play --config ./my-fishing.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagFastCatch, "fast-catch", false, "Start with the fast catch cheat enabled")
	cmd.Flags().StringVar(&flagExport, "export", "", "Write the session's catch journal to this CSV file on exit")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFastCatch {
		cfg.Cheats.FastCatch = true
	}

	lib, err := assets.Load(cfg.Cutscene)
	if err != nil {
		return err
	}
	warnMissingSprites(lib)

	// The journal is optional; the game runs without it.
	journal, err := storage.Open()
	if err != nil {
		logger.Warn("catch journal unavailable", "error", err)
		journal = nil
	} else {
		defer journal.Close()
	}

	game, err := gofish.New(gofish.Options{
		Config:    cfg,
		Assets:    lib,
		Mixer:     audio.NewMixer(audio.Options{Logger: logger}),
		Journal:   journal,
		Logger:    logger,
		ShowAudio: flagDebug,
	})
	if err != nil {
		return err
	}

	if err := playLoop(game, journal, cfg); err != nil {
		return err
	}

	printSummary(journal)

	if flagExport != "" && journal != nil {
		if err := exportJournal(journal, flagExport); err != nil {
			return err
		}
		fmt.Printf("Journal exported to %s\n", flagExport)
	}
	return nil
}

// playLoop runs the game, switching to the journal screen and back until
// the player quits.
func playLoop(game *gofish.Game, journal *storage.Store, cfg config.Config) error {
	opts := tui.RunOptions{
		HoldWindow: time.Duration(cfg.Input.ReelHoldMS) * time.Millisecond,
	}

	for {
		width, height := terminalSize()
		rc := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		}

		res, err := tui.Run(game, rc, opts)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !res.OpenJournal {
			return nil
		}

		back, err := tui.RunJournal(journal, width, height)
		if err != nil {
			return fmt.Errorf("running journal: %w", err)
		}
		if !back {
			return nil
		}
		opts.Resume = true
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// warnMissingSprites logs every catalogue fish without art. Those fish
// still play and show a placeholder on the win screen.
func warnMissingSprites(lib *assets.Library) {
	var keys []string
	for _, v := range fish.Variants() {
		keys = append(keys, v.AssetKey)
	}
	if missing := lib.Missing(keys); len(missing) > 0 {
		logger.Warn("missing fish sprites", "keys", missing)
	}
}

// printSummary prints the session totals after the game closes.
func printSummary(journal *storage.Store) {
	if journal == nil {
		return
	}
	sum, err := journal.Summary()
	if err != nil {
		logger.Warn("cannot summarise journal", "error", err)
		return
	}
	if sum.Attempts == 0 {
		return
	}

	fmt.Println("Session summary")
	fmt.Println()
	fmt.Printf("  %-12s %d\n", "Attempts", sum.Attempts)
	fmt.Printf("  %-12s %d (%.0f%%)\n", "Caught", sum.Caught, sum.CatchRate()*100)
	fmt.Printf("  %-12s %d\n", "Escaped", sum.Escaped)
	fmt.Printf("  %-12s %d\n", "High score", sum.HighScore)
	if sum.Caught > 0 {
		fmt.Printf("  %-12s %.1f ± %.1f\n", "Avg score", sum.AvgScore, sum.ScoreStdDev)
		fmt.Printf("  %-12s %.2f lbs\n", "Heaviest", sum.Heaviest)
	}
	fmt.Println()
}

func exportJournal(journal *storage.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := journal.ExportCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
