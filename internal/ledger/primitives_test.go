package ledger

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-05")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if FormatDate(date) != "2024-03-05" {
		t.Errorf("round trip = %q, want 2024-03-05", FormatDate(date))
	}

	// Full timestamps are accepted and truncated to their calendar date.
	date, err = ParseDate("2024-03-05T23:59:00+02:00")
	if err != nil {
		t.Fatalf("ParseDate on RFC 3339 input failed: %v", err)
	}
	if FormatDate(date) != "2024-03-05" {
		t.Errorf("truncated date = %q, want 2024-03-05", FormatDate(date))
	}

	for _, s := range []string{"", "05/03/2024", "2024-13-01", "yesterday"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}

func TestParseDurationSeconds(t *testing.T) {
	d, err := ParseDurationSeconds(90.5)
	if err != nil {
		t.Fatalf("ParseDurationSeconds failed: %v", err)
	}
	if d != 90*time.Second+500*time.Millisecond {
		t.Errorf("duration = %v, want 1m30.5s", d)
	}

	if _, err := ParseDurationSeconds(0); err != nil {
		t.Errorf("zero duration should be accepted: %v", err)
	}
	if _, err := ParseDurationSeconds(-1); err == nil {
		t.Error("negative duration should be rejected")
	}
}

func TestParseIdentifier(t *testing.T) {
	if _, err := ParseIdentifier("Celeste"); err != nil {
		t.Errorf("ParseIdentifier failed: %v", err)
	}
	for _, s := range []string{"", "   ", "\t"} {
		if _, err := ParseIdentifier(s); err == nil {
			t.Errorf("ParseIdentifier(%q) should fail", s)
		}
	}
}
