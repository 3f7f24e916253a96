package ledger

import (
	"fmt"
	"time"
)

// EntryBase holds the fields shared by every record-entry variant.
type EntryBase struct {
	Date        time.Time
	Description string
	Screenshot  string // relative path; existence is checked by ScreenshotChecker, not the engine
}

// Entry is the closed set of record-entry variants. Exactly one concrete
// type exists per variant; code matching on entries switches over the
// concrete types so a new variant cannot be added without updating every
// switch.
type Entry interface {
	Variant() Variant
	Base() EntryBase
	isEntry()
}

// CompletedEntry records plain completion.
type CompletedEntry struct {
	EntryBase
}

// CompletedAtDifficultyEntry records completion at a named difficulty.
type CompletedAtDifficultyEntry struct {
	EntryBase
	Difficulty string
}

// TimeEntry records a timed run.
type TimeEntry struct {
	EntryBase
	Duration time.Duration
}

// ScoreEntry records a scored run. Whether higher or lower is better is
// carried by the declaring record type's kind.
type ScoreEntry struct {
	EntryBase
	Value float64
}

func (e CompletedEntry) Variant() Variant             { return VariantCompleted }
func (e CompletedAtDifficultyEntry) Variant() Variant { return VariantCompletedAtDifficulty }
func (e TimeEntry) Variant() Variant                  { return VariantTime }
func (e ScoreEntry) Variant() Variant                 { return VariantScore }

func (e CompletedEntry) Base() EntryBase             { return e.EntryBase }
func (e CompletedAtDifficultyEntry) Base() EntryBase { return e.EntryBase }
func (e TimeEntry) Base() EntryBase                  { return e.EntryBase }
func (e ScoreEntry) Base() EntryBase                 { return e.EntryBase }

func (CompletedEntry) isEntry()             {}
func (CompletedAtDifficultyEntry) isEntry() {}
func (TimeEntry) isEntry()                  {}
func (ScoreEntry) isEntry()                 {}

// EntryFields carries the raw keyed values an entry is constructed from.
// Payload pointers distinguish "absent" from zero values.
type EntryFields struct {
	Date            string
	Description     string
	Screenshot      string
	Difficulty      string
	DurationSeconds *float64
	Value           *float64
}

// NewEntry constructs the entry variant selected by the kind discriminant.
// Unknown discriminants and missing required payload fields fail; variant
// selection is a pure function of the discriminant, never guessed from the
// fields present.
func NewEntry(kind string, fields EntryFields) (Entry, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, &ValidationError{
			Code:    CodeUnknownVariant,
			Message: err.Error(),
		}
	}

	date, err := ParseDate(fields.Date)
	if err != nil {
		return nil, &ValidationError{
			Code:    CodeFormat,
			Path:    "date",
			Message: err.Error(),
		}
	}

	base := EntryBase{
		Date:        date,
		Description: fields.Description,
		Screenshot:  fields.Screenshot,
	}

	switch k.Variant() {
	case VariantCompleted:
		return CompletedEntry{base}, nil
	case VariantCompletedAtDifficulty:
		if fields.Difficulty == "" {
			return nil, missingFieldError("difficulty", k)
		}
		return CompletedAtDifficultyEntry{EntryBase: base, Difficulty: fields.Difficulty}, nil
	case VariantTime:
		if fields.DurationSeconds == nil {
			return nil, missingFieldError("duration_seconds", k)
		}
		d, err := ParseDurationSeconds(*fields.DurationSeconds)
		if err != nil {
			return nil, &ValidationError{
				Code:    CodeFormat,
				Path:    "duration_seconds",
				Message: err.Error(),
			}
		}
		return TimeEntry{EntryBase: base, Duration: d}, nil
	case VariantScore:
		if fields.Value == nil {
			return nil, missingFieldError("value", k)
		}
		return ScoreEntry{EntryBase: base, Value: *fields.Value}, nil
	}
	// Unreachable: ParseKind only returns kinds covered above.
	return nil, fmt.Errorf("unhandled kind: %s", k)
}

func missingFieldError(field string, k Kind) *ValidationError {
	return &ValidationError{
		Code:    CodeFormat,
		Path:    field,
		Message: fmt.Sprintf("missing required field %q for kind %s", field, k),
	}
}
