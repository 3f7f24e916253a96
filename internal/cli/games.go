package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miscore-dev/miscore/internal/config"
	"github.com/miscore-dev/miscore/internal/store"
)

var gamesCmd = &cobra.Command{
	Use:   "games [file]",
	Short: "List the games in a records file",
	Long: `List the games in a records file with their difficulty levels,
declared record types, and record counts. The file must be valid; run
'miscore validate' first to see what is wrong with an invalid one.`,
	Example:       `  miscore games records.json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error loading config: %v\n", err)
			return NewExitError(ExitInvalidArguments)
		}
		return runGames(args, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(gamesCmd)
}

func runGames(args []string, cfg *config.Configuration, out, errOut io.Writer) error {
	filePath := recordsPath(args, 0, cfg)

	result := store.LoadAndValidate(filePath)
	if !result.Valid {
		printResult(result, filePath, out, errOut)
		return NewExitError(ExitValidationFailed)
	}

	if len(result.Ledger.Games) == 0 {
		fmt.Fprintf(out, "No games in %s\n", filePath)
		return nil
	}

	for _, g := range result.Ledger.Games {
		fmt.Fprintf(out, "%s\n", g.Name)
		if len(g.Difficulties) > 0 {
			fmt.Fprintf(out, "  difficulties: %s\n", strings.Join(g.Difficulties, ", "))
		}
		for _, rt := range g.RecordTypes {
			count := 0
			for _, r := range g.Records {
				if r.TypeID == rt.ID {
					count++
				}
			}
			fmt.Fprintf(out, "  %s (%s): %d record(s)\n", rt.DisplayName, rt.Kind, count)
		}
	}
	return nil
}
