package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miscore-dev/miscore/internal/config"
	"github.com/miscore-dev/miscore/internal/ledger"
	"github.com/miscore-dev/miscore/internal/progress"
	"github.com/miscore-dev/miscore/internal/store"
)

var (
	validateStrictFlag      bool
	validateScreenshotsFlag bool
	validateSchemaFlag      bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a records file against its declared schema",
	Long: `Validate a records file against its declared schema.

Every problem in the document is collected and reported in one pass:
structural defects, unparseable fields, duplicate games, difficulties, or
record-type ids, and record entries whose shape or references disagree with
the record type they claim to conform to.

By default the report is printed and the process exits zero even for an
invalid file, so the command is safe in pipelines that only want the
report. --strict maps an invalid document to a non-zero exit code.

Exit Codes:
  0 - Document is valid (or invalid without --strict)
  1 - Document is invalid and --strict was given
  3 - Invalid arguments or unreadable config`,
	Example: `  miscore validate records.json
  miscore validate records.json --strict
  miscore validate records.json --check-screenshots
  miscore validate --schema`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error loading config: %v\n", err)
			return NewExitError(ExitInvalidArguments)
		}
		return runValidate(args, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateStrictFlag, "strict", false, "Exit non-zero when the document is invalid")
	validateCmd.Flags().BoolVar(&validateScreenshotsFlag, "check-screenshots", false, "Verify referenced screenshots exist next to the records file")
	validateCmd.Flags().BoolVar(&validateSchemaFlag, "schema", false, "Print the expected document shape and exit")
}

func runValidate(args []string, cfg *config.Configuration, out, errOut io.Writer) error {
	if validateSchemaFlag {
		printSchema(out)
		return nil
	}

	filePath := recordsPath(args, 0, cfg)
	result := store.LoadAndValidate(filePath)

	if result.Valid && (validateScreenshotsFlag || cfg.CheckScreenshots) {
		checkScreenshots(result, filePath)
	}

	printResult(result, filePath, out, errOut)

	if !result.Valid && (validateStrictFlag || cfg.Strict) {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// checkScreenshots runs the opt-in screenshot existence scan and folds any
// missing files into the result. Screenshot paths resolve relative to the
// records file's directory.
func checkScreenshots(result *ledger.Result, filePath string) {
	indicator := progress.NewIndicator(progress.DetectTerminalCapabilities())
	indicator.Start("Checking screenshots...")
	defer indicator.Stop()

	checker := &ledger.ScreenshotChecker{BaseDir: filepath.Dir(filePath)}
	for _, err := range checker.Check(result.Ledger) {
		result.AddError(err)
	}
}

// printSchema prints the expected document shape.
func printSchema(out io.Writer) {
	schema := ledger.DocumentSchema

	fmt.Fprintf(out, "Records document shape\n")
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(out, "%s\n\n", schema.Description)

	fmt.Fprintf(out, "\"<game name>\": object\n")
	for _, field := range schema.Fields {
		printSchemaField(field, "  ", out)
	}
}

// printSchemaField prints a single schema field with indentation.
func printSchemaField(field ledger.SchemaField, indent string, out io.Writer) {
	required := ""
	if field.Required {
		required = " (required)"
	}

	typeStr := string(field.Type)
	if len(field.Enum) > 0 {
		typeStr = fmt.Sprintf("enum[%s]", strings.Join(field.Enum, ", "))
	}

	fmt.Fprintf(out, "%s%s: %s%s\n", indent, field.Name, typeStr, required)

	if field.Description != "" {
		fmt.Fprintf(out, "%s  # %s\n", indent, field.Description)
	}

	for _, child := range field.Children {
		printSchemaField(child, indent+"  ", out)
	}
}
