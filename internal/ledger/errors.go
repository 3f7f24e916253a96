package ledger

import (
	"fmt"
	"strings"
)

// ErrorCode classifies a validation error.
type ErrorCode string

const (
	// CodeStructure marks a document whose outer shape is not a mapping of
	// game name to game body. Fatal to the whole validation pass.
	CodeStructure ErrorCode = "structure"
	// CodeFormat marks a scalar field that cannot be parsed as its declared
	// type (bad date, negative duration, empty identifier).
	CodeFormat ErrorCode = "format"
	// CodeUnknownKind marks a record-type kind outside the fixed enumeration.
	CodeUnknownKind ErrorCode = "unknown_kind"
	// CodeUnknownVariant marks an entry discriminant outside the fixed enumeration.
	CodeUnknownVariant ErrorCode = "unknown_variant"
	// CodeDuplicateGame marks two games sharing a name.
	CodeDuplicateGame ErrorCode = "duplicate_game"
	// CodeDuplicateDifficulty marks a repeated difficulty label within a game.
	CodeDuplicateDifficulty ErrorCode = "duplicate_difficulty"
	// CodeDuplicateRecordType marks two record types sharing an id within a game.
	CodeDuplicateRecordType ErrorCode = "duplicate_record_type"
	// CodeDifficultyRequired marks a completed_at_difficulty declaration on a
	// game with no difficulty levels.
	CodeDifficultyRequired ErrorCode = "difficulty_required"
	// CodeUnknownGame marks an entry referencing a game not in the ledger.
	CodeUnknownGame ErrorCode = "unknown_game"
	// CodeUnknownRecordType marks an entry referencing an undeclared record type.
	CodeUnknownRecordType ErrorCode = "unknown_record_type"
	// CodeUnknownDifficulty marks an entry referencing a difficulty its game
	// does not declare.
	CodeUnknownDifficulty ErrorCode = "unknown_difficulty"
	// CodeVariantMismatch marks an entry whose shape disagrees with its
	// declared record type's kind.
	CodeVariantMismatch ErrorCode = "variant_mismatch"
	// CodeScreenshotMissing marks a screenshot path that does not resolve to
	// a file. Reported only by the opt-in screenshot check, never by the
	// validation engine itself.
	CodeScreenshotMissing ErrorCode = "screenshot_missing"
)

// ValidationError is a single validation error with enough addressing
// information to locate the offending fragment in the original document.
type ValidationError struct {
	Code     ErrorCode
	Path     string // JSON-path style field location (e.g., "Celeste.records[0].date")
	Line     int    // 1-based line number in the source document
	Column   int    // 1-based column number in the source document
	Game     string // owning game name, when known
	Message  string // human-readable error description
	Expected string // what was expected (type, value, format)
	Actual   string // what was found
	Hint     string // suggestion for fixing the error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf("line %d", e.Line))
		if e.Column > 0 {
			sb.WriteString(fmt.Sprintf(":%d", e.Column))
		}
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(fmt.Sprintf("%s: ", e.Path))
	}
	sb.WriteString(e.Message)
	return sb.String()
}

// FormatFull returns a detailed multi-line rendering of the error.
func (e *ValidationError) FormatFull() string {
	var sb strings.Builder

	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf("  Line %d", e.Line))
		if e.Column > 0 {
			sb.WriteString(fmt.Sprintf(", Column %d", e.Column))
		}
		sb.WriteString("\n")
	}
	if e.Path != "" {
		sb.WriteString(fmt.Sprintf("  Path: %s\n", e.Path))
	}
	sb.WriteString(fmt.Sprintf("  Error: %s\n", e.Message))
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("  Expected: %s\n", e.Expected))
	}
	if e.Actual != "" {
		sb.WriteString(fmt.Sprintf("  Got: %s\n", e.Actual))
	}
	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", e.Hint))
	}

	return sb.String()
}

// Summary contains counts for a validated ledger.
type Summary struct {
	Games       int
	RecordTypes int
	Records     int
}

// Result is the complete validation outcome for a document: either Valid
// with the typed Ledger, or invalid with every error collected across the
// pass. Errors below CodeStructure are collected, never surfaced one at a
// time; a structure error alone short-circuits since no per-game detail is
// meaningful on a malformed outer shape.
type Result struct {
	Valid   bool
	Errors  []*ValidationError
	Ledger  *Ledger  // populated when Valid
	Summary *Summary // populated when Valid
}

// HasErrors returns true if any validation errors were collected.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// AddError adds a validation error to the result.
func (r *Result) AddError(err *ValidationError) {
	r.Errors = append(r.Errors, err)
	r.Valid = false
}

// Err returns nil for a valid result, or a single aggregate error carrying
// every collected validation error. Callers opting into strict mode map the
// aggregate to a non-zero exit code.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &AggregateError{Errors: r.Errors}
}

// AggregateError bundles all errors from one validation pass into a single
// error value.
type AggregateError struct {
	Errors []*ValidationError
}

// Error implements the error interface.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}
