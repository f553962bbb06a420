// gofish is a fishing game for the terminal: wait for a bite, strike, then
// keep the fish inside the catch bar until it is reeled in.
//
// Usage:
//
//	gofish                   - Play (same as "gofish play")
//	gofish play              - Play, with an optional CSV export of the journal
//	gofish catalogue         - Show every fish and its rolled stat ranges
//	gofish config            - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Use a custom fishing.yaml
//	--log-file <path>  - Write logs to a file (the game owns the screen)
//	--debug            - Debug logging and the audio cue line
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gofish",
	Short: "Go Fish - a fishing game in your terminal",
	Long: `Go Fish is a terminal fishing game. Cast your line, wait for a bite,
strike, then hold the reel to keep the fish inside the catch bar until the
progress gauge fills up.

Available commands:
  play       - Start fishing (default)
  catalogue  - Show every fish and its stat ranges
  config     - Print the default configuration

Examples:
  gofish
  gofish play --fast-catch
  gofish play --export catches.csv
  gofish catalogue --samples 5000
  gofish config > ~/.gofish/configs/fishing.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom fishing config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and audio cue display")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogueCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging points the logger at --log-file. Without one, logs are
// discarded since the game draws over the whole terminal.
func setupLogging(cmd *cobra.Command, args []string) error {
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gofish",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}
