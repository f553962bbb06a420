package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/go-fish/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in fishing.yaml. Save it to one of the search paths and
edit it to tune the game:

  ~/.gofish/configs/fishing.yaml
  ./configs/fishing.yaml

or pass any file with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	// Validate the effective config so a broken --config file is reported.
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return err
		}
	}
	_, err := fmt.Print(string(config.DefaultYAML()))
	return err
}
