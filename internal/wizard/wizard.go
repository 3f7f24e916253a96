// Package wizard implements the interactive prompts used by the add-game
// and add-record commands. It is thin I/O glue around the ledger types; all
// real validation happens in the validation engine after each mutation.
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/miscore-dev/miscore/internal/ledger"
)

// Wizard prompts on out and reads answers from in.
type Wizard struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a wizard reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Wizard {
	return &Wizard{in: bufio.NewReader(in), out: out}
}

// Prompt asks for one line of input and returns it trimmed.
func (w *Wizard) Prompt(label string) (string, error) {
	fmt.Fprintf(w.out, "%s: ", label)
	line, err := w.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptDefault asks for one line of input, returning def on an empty answer.
func (w *Wizard) PromptDefault(label, def string) (string, error) {
	answer, err := w.Prompt(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question.
func (w *Wizard) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer, err := w.Prompt(fmt.Sprintf("%s (%s)", label, hint))
	if err != nil {
		return def, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}

// CollectDifficulties prompts for difficulty labels until a blank answer.
// Repeated labels are rejected immediately so the resulting game passes the
// uniqueness invariant.
func (w *Wizard) CollectDifficulties() ([]string, error) {
	fmt.Fprintln(w.out, "Enter difficulty levels in order, one per line (blank line to finish):")
	var difficulties []string
	for {
		label, err := w.Prompt("difficulty")
		if err != nil {
			return difficulties, err
		}
		if label == "" {
			return difficulties, nil
		}
		duplicate := false
		for _, d := range difficulties {
			if d == label {
				duplicate = true
				break
			}
		}
		if duplicate {
			fmt.Fprintf(w.out, "%q is already in the list\n", label)
			continue
		}
		difficulties = append(difficulties, label)
	}
}

// CollectRecordTypes prompts for record-type declarations until the user
// stops. When the game has no difficulties, the completed_at_difficulty
// kind is refused up front instead of failing validation later.
func (w *Wizard) CollectRecordTypes(hasDifficulties bool) ([]ledger.RecordType, error) {
	var types []ledger.RecordType
	for {
		more, err := w.Confirm("Add a record type?", len(types) == 0)
		if err != nil || !more {
			return types, err
		}

		id, err := w.Prompt("id")
		if err != nil {
			return types, err
		}
		if _, err := ledger.ParseIdentifier(id); err != nil {
			fmt.Fprintln(w.out, "id must be a non-empty string")
			continue
		}
		exists := false
		for _, rt := range types {
			if rt.ID == id {
				exists = true
				break
			}
		}
		if exists {
			fmt.Fprintf(w.out, "record type %q already declared\n", id)
			continue
		}

		kindAnswer, err := w.Prompt(fmt.Sprintf("kind (%s)", strings.Join(ledger.ValidKinds(), ", ")))
		if err != nil {
			return types, err
		}
		kind, err := ledger.ParseKind(kindAnswer)
		if err != nil {
			fmt.Fprintln(w.out, err.Error())
			continue
		}
		if kind.RequiresDifficulty() && !hasDifficulties {
			fmt.Fprintln(w.out, "completed_at_difficulty needs a game with difficulty levels")
			continue
		}

		displayName, err := w.PromptDefault("display name", id)
		if err != nil {
			return types, err
		}
		description, err := w.Prompt("description (optional)")
		if err != nil {
			return types, err
		}

		types = append(types, ledger.RecordType{
			ID:          id,
			Kind:        kind,
			DisplayName: displayName,
			Description: description,
		})
	}
}

// CollectEntry prompts for one record entry conforming to the given record
// type. The entry is built through the explicit-discriminant constructor so
// the payload field set always matches the declared kind.
func (w *Wizard) CollectEntry(rt ledger.RecordType, difficulties []string) (ledger.Entry, error) {
	date, err := w.PromptDefault("date (YYYY-MM-DD)", time.Now().Format(ledger.DateLayout))
	if err != nil {
		return nil, err
	}
	description, err := w.Prompt("description (optional)")
	if err != nil {
		return nil, err
	}
	screenshot, err := w.Prompt("screenshot path (optional)")
	if err != nil {
		return nil, err
	}

	fields := ledger.EntryFields{
		Date:        date,
		Description: description,
		Screenshot:  screenshot,
	}

	switch rt.Kind.Variant() {
	case ledger.VariantCompletedAtDifficulty:
		difficulty, err := w.Prompt(fmt.Sprintf("difficulty (%s)", strings.Join(difficulties, ", ")))
		if err != nil {
			return nil, err
		}
		fields.Difficulty = difficulty
	case ledger.VariantTime:
		seconds, err := w.promptNumber("duration in seconds")
		if err != nil {
			return nil, err
		}
		fields.DurationSeconds = &seconds
	case ledger.VariantScore:
		value, err := w.promptNumber("score value")
		if err != nil {
			return nil, err
		}
		fields.Value = &value
	}

	return ledger.NewEntry(string(rt.Kind), fields)
}

func (w *Wizard) promptNumber(label string) (float64, error) {
	answer, err := w.Prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", label, answer)
	}
	return f, nil
}
