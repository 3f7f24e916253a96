package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/miscore-dev/miscore/internal/ledger"
)

// printResult renders a validation result: a green summary for valid
// documents, or the full aggregate error report for invalid ones. The
// report always includes every collected error so a hand-edited file can be
// fixed in one pass.
func printResult(result *ledger.Result, filePath string, out, errOut io.Writer) {
	if result.Valid {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(out, "%s %s is valid\n", green("✓"), filePath)

		if result.Summary != nil {
			fmt.Fprintf(out, "\nSummary:\n")
			fmt.Fprintf(out, "  games: %d\n", result.Summary.Games)
			fmt.Fprintf(out, "  record types: %d\n", result.Summary.RecordTypes)
			fmt.Fprintf(out, "  records: %d\n", result.Summary.Records)
		}
		return
	}

	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(errOut, "%s %s has %d error(s)\n\n", red("✗"), filePath, len(result.Errors))

	for i, err := range result.Errors {
		fmt.Fprintf(errOut, "Error %d [%s]:\n", i+1, err.Code)

		if err.Line > 0 {
			fmt.Fprintf(errOut, "  Location: line %d", err.Line)
			if err.Column > 0 {
				fmt.Fprintf(errOut, ", column %d", err.Column)
			}
			fmt.Fprintf(errOut, "\n")
		}
		if err.Path != "" {
			fmt.Fprintf(errOut, "  Path: %s\n", err.Path)
		}
		fmt.Fprintf(errOut, "  Message: %s\n", err.Message)
		if err.Expected != "" {
			fmt.Fprintf(errOut, "  Expected: %s\n", err.Expected)
		}
		if err.Actual != "" {
			fmt.Fprintf(errOut, "  Got: %s\n", err.Actual)
		}
		if err.Hint != "" {
			fmt.Fprintf(errOut, "  %s %s\n", yellow("Hint:"), err.Hint)
		}

		fmt.Fprintf(errOut, "\n")
	}
}
