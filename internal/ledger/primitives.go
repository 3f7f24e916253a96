package ledger

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used throughout the document shape.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date. Plain YYYY-MM-DD dates are preferred;
// full RFC 3339 timestamps are accepted and truncated to their date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD, got %q", s)
}

// FormatDate formats a date in the document's YYYY-MM-DD shape.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDurationSeconds converts a duration expressed in seconds into a
// time.Duration. Negative durations are rejected.
func ParseDurationSeconds(seconds float64) (time.Duration, error) {
	if seconds < 0 {
		return 0, fmt.Errorf("duration must be >= 0, got %v", seconds)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// ParseIdentifier validates a non-empty identifier string (game names,
// record-type ids, difficulty labels).
func ParseIdentifier(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("identifier must be a non-empty string")
	}
	return s, nil
}
