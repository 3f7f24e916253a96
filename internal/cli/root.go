// miscore - personal gaming record ledger
// Source: https://github.com/miscore-dev/miscore

// Package cli provides Cobra-based CLI commands for the miscore ledger
// tool: document validation (validate), ledger construction wizards
// (add-game, add-record), and the games summary listing.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/miscore-dev/miscore/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "miscore",
	Short: "personal gaming record ledger",
	Long: `miscore - personal gaming record ledger

Track games, difficulty levels, and achievement records (completions, timed
runs, scores) in a single JSON document, and validate that document against
its declared schema.

Source: https://github.com/miscore-dev/miscore`,
	Example: `  # Validate a records file and print every problem found
  miscore validate records.json

  # Validation failures as a non-zero exit code (CI use)
  miscore validate records.json --strict

  # Add a game with an interactive difficulty and record-type setup
  miscore add-game "Celeste" records.json

  # Append a record entry to a declared record type
  miscore add-record "Celeste" any-percent records.json

  # Summarize the ledger
  miscore games records.json`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".miscore/config.json", "Path to config file")
	rootCmd.PersistentFlags().String("records", "", "Path to the records file (overrides config)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// loadConfig loads the layered configuration and applies the persistent
// flag overrides shared by every command.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if records, _ := cmd.Flags().GetString("records"); records != "" {
		cfg.RecordsFile = records
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	return cfg, nil
}

// recordsPath picks the records file from the command args, falling back to
// the configured default.
func recordsPath(args []string, index int, cfg *config.Configuration) string {
	if len(args) > index {
		return args[index]
	}
	return cfg.RecordsFile
}
