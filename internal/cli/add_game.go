package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/miscore-dev/miscore/internal/config"
	"github.com/miscore-dev/miscore/internal/ledger"
	"github.com/miscore-dev/miscore/internal/progress"
	"github.com/miscore-dev/miscore/internal/store"
	"github.com/miscore-dev/miscore/internal/wizard"
)

var addGameNoInteractiveFlag bool

var addGameCmd = &cobra.Command{
	Use:   "add-game <name> [file]",
	Short: "Add a new game to a records file",
	Long: `Add a new game to a records file.

When stdin is a terminal, an interactive wizard collects the game's
difficulty levels and record-type declarations. The mutated ledger is
re-validated before anything is written back, so a records file can never
be left invalid by this command. The file is created when it does not
exist yet.`,
	Example: `  miscore add-game "Celeste" records.json
  miscore add-game "Doom" records.json --no-interactive`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error loading config: %v\n", err)
			return NewExitError(ExitInvalidArguments)
		}
		return runAddGame(args, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(addGameCmd)
	addGameCmd.Flags().BoolVar(&addGameNoInteractiveFlag, "no-interactive", false, "Skip the interactive difficulty and record-type setup")
}

func runAddGame(args []string, cfg *config.Configuration, in io.Reader, out, errOut io.Writer) error {
	name := args[0]
	filePath := recordsPath(args, 1, cfg)

	led, err := loadLedgerForMutation(filePath, out, errOut)
	if err != nil {
		return err
	}

	if led.GameByName(name) != nil {
		fmt.Fprintf(out, "Game %q already exists in %s\n", name, filePath)
		return nil
	}

	game := ledger.Game{Name: name}

	interactive := progress.StdinIsInteractive() && !addGameNoInteractiveFlag
	if interactive {
		w := wizard.New(in, out)
		difficulties, err := w.CollectDifficulties()
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return NewExitError(ExitInvalidArguments)
		}
		game.Difficulties = difficulties

		types, err := w.CollectRecordTypes(len(difficulties) > 0)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return NewExitError(ExitInvalidArguments)
		}
		game.RecordTypes = types
	}

	if err := led.AddGame(game); err != nil {
		fmt.Fprintf(errOut, "Error adding game: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	return writeValidated(led, filePath, fmt.Sprintf("Game %q added to %s", name, filePath), out, errOut)
}

// loadLedgerForMutation loads and validates the records file, refusing to
// mutate an invalid document. A missing file yields an empty ledger.
func loadLedgerForMutation(filePath string, out, errOut io.Writer) (*ledger.Ledger, error) {
	if !store.Exists(filePath) {
		return &ledger.Ledger{}, nil
	}

	result := store.LoadAndValidate(filePath)
	if !result.Valid {
		printResult(result, filePath, out, errOut)
		fmt.Fprintf(errOut, "Fix the existing errors before mutating %s\n", filePath)
		return nil, NewExitError(ExitValidationFailed)
	}
	return result.Ledger, nil
}

// writeValidated re-validates a mutated ledger through the engine and saves
// it only when the round trip comes back valid.
func writeValidated(led *ledger.Ledger, filePath, successMsg string, out, errOut io.Writer) error {
	data, err := led.MarshalJSON()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitValidationFailed)
	}

	result := ledger.ValidateBytes(data)
	if !result.Valid {
		printResult(result, filePath, out, errOut)
		return NewExitError(ExitValidationFailed)
	}

	if err := store.Save(filePath, led); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitValidationFailed)
	}

	fmt.Fprintln(out, successMsg)
	return nil
}
