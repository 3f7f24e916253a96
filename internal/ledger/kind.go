// Package ledger models a personal gaming-achievement ledger: games with
// optional difficulty levels and declared record types, plus the concrete
// record entries conforming to those declarations. It provides the
// validation engine that checks an untyped parsed document against the
// ledger invariants and reports every violation found in a single pass.
package ledger

import (
	"fmt"
	"strings"
)

// Kind identifies the tracking category a record type declares.
type Kind string

const (
	// KindCompleted tracks plain completion of a game.
	KindCompleted Kind = "completed"
	// KindCompletedAtDifficulty tracks completion at a named difficulty level.
	KindCompletedAtDifficulty Kind = "completed_at_difficulty"
	// KindFastestTime tracks timed runs where lower is better.
	KindFastestTime Kind = "fastest_time"
	// KindLongestTime tracks timed runs where higher is better.
	KindLongestTime Kind = "longest_time"
	// KindHighScore tracks scores where higher is better.
	KindHighScore Kind = "high_score"
	// KindLowScore tracks scores where lower is better.
	KindLowScore Kind = "low_score"
)

// Variant identifies which record-entry shape a kind expects. The two timed
// kinds share the time variant and the two scored kinds share the score
// variant; direction (higher/lower is better) is carried by the kind, not
// the entry.
type Variant string

const (
	VariantCompleted             Variant = "completed"
	VariantCompletedAtDifficulty Variant = "completed_at_difficulty"
	VariantTime                  Variant = "time"
	VariantScore                 Variant = "score"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "completed":
		return KindCompleted, nil
	case "completed_at_difficulty":
		return KindCompletedAtDifficulty, nil
	case "fastest_time":
		return KindFastestTime, nil
	case "longest_time":
		return KindLongestTime, nil
	case "high_score":
		return KindHighScore, nil
	case "low_score":
		return KindLowScore, nil
	default:
		return "", fmt.Errorf("unknown record kind: %q (valid kinds: %s)", s, strings.Join(ValidKinds(), ", "))
	}
}

// ValidKinds returns the list of valid kind strings.
func ValidKinds() []string {
	return []string{
		"completed",
		"completed_at_difficulty",
		"fastest_time",
		"longest_time",
		"high_score",
		"low_score",
	}
}

// Variant returns the entry shape this kind expects.
func (k Kind) Variant() Variant {
	switch k {
	case KindCompletedAtDifficulty:
		return VariantCompletedAtDifficulty
	case KindFastestTime, KindLongestTime:
		return VariantTime
	case KindHighScore, KindLowScore:
		return VariantScore
	default:
		return VariantCompleted
	}
}

// RequiresDifficulty reports whether declarations of this kind are only
// meaningful on games that define difficulty levels.
func (k Kind) RequiresDifficulty() bool {
	return k == KindCompletedAtDifficulty
}

// PayloadField returns the document field carrying this variant's payload,
// or "" for the completed variant which has none.
func (v Variant) PayloadField() string {
	switch v {
	case VariantCompletedAtDifficulty:
		return "difficulty"
	case VariantTime:
		return "duration_seconds"
	case VariantScore:
		return "value"
	default:
		return ""
	}
}
