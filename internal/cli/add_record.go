package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miscore-dev/miscore/internal/config"
	"github.com/miscore-dev/miscore/internal/ledger"
	"github.com/miscore-dev/miscore/internal/progress"
	"github.com/miscore-dev/miscore/internal/store"
	"github.com/miscore-dev/miscore/internal/wizard"
)

var addRecordCmd = &cobra.Command{
	Use:   "add-record <game> <record-type-id> [file]",
	Short: "Add a record entry to a declared record type",
	Long: `Add a record entry to a declared record type.

An interactive wizard collects the entry fields required by the record
type's kind (date, optional description and screenshot, plus the
kind-specific payload). The entry is checked against the ledger's
declarations and the whole document is re-validated before writing back.`,
	Example: `  miscore add-record "Celeste" any-percent records.json`,
	Args:          cobra.RangeArgs(2, 3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error loading config: %v\n", err)
			return NewExitError(ExitInvalidArguments)
		}
		return runAddRecord(args, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(addRecordCmd)
}

func runAddRecord(args []string, cfg *config.Configuration, in io.Reader, out, errOut io.Writer) error {
	gameName := args[0]
	typeID := args[1]
	filePath := recordsPath(args, 2, cfg)

	if !progress.StdinIsInteractive() {
		fmt.Fprintln(errOut, "Error: add-record needs an interactive terminal")
		return NewExitError(ExitInvalidArguments)
	}

	if !store.Exists(filePath) {
		fmt.Fprintf(errOut, "Error: records file not found: %s\n", filePath)
		fmt.Fprintf(errOut, "Hint: Create it first with 'miscore add-game'\n")
		return NewExitError(ExitInvalidArguments)
	}

	led, err := loadLedgerForMutation(filePath, out, errOut)
	if err != nil {
		return err
	}

	game := led.GameByName(gameName)
	if game == nil {
		fmt.Fprintf(errOut, "Error: unknown game: %q\n", gameName)
		return NewExitError(ExitInvalidArguments)
	}

	rt := game.RecordTypeByID(typeID)
	if rt == nil {
		fmt.Fprintf(errOut, "Error: game %q declares no record type %q\n", gameName, typeID)
		if len(game.RecordTypes) > 0 {
			ids := make([]string, len(game.RecordTypes))
			for i, t := range game.RecordTypes {
				ids[i] = t.ID
			}
			fmt.Fprintf(errOut, "Declared record types: %s\n", strings.Join(ids, ", "))
		}
		return NewExitError(ExitInvalidArguments)
	}

	w := wizard.New(in, out)
	entry, err := w.CollectEntry(*rt, game.Difficulties)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	// Cross-check the entry against the declarations before mutating.
	if errs := ledger.ValidateEntries(led, []ledger.TaggedEntry{{
		Game:         gameName,
		RecordTypeID: typeID,
		Entry:        entry,
	}}); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(errOut, "Error: %s\n", e.Error())
		}
		return NewExitError(ExitValidationFailed)
	}

	if err := game.AddRecord(ledger.Record{TypeID: typeID, Entry: entry}); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitValidationFailed)
	}

	msg := fmt.Sprintf("Record added to %q (%s) in %s", gameName, rt.DisplayName, filePath)
	return writeValidated(led, filePath, msg, out, errOut)
}
