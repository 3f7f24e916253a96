package ledger

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func buildLedger(t *testing.T) *Ledger {
	t.Helper()

	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	duration, err := ParseDurationSeconds(1523)
	if err != nil {
		t.Fatal(err)
	}

	return &Ledger{Games: []Game{
		{
			Name:         "Celeste",
			Difficulties: []string{"normal", "hard"},
			RecordTypes: []RecordType{
				{ID: "any-percent", Kind: KindFastestTime, DisplayName: "Any% Speedrun"},
				{ID: "story", Kind: KindCompletedAtDifficulty, DisplayName: "Story Completion"},
			},
			Records: []Record{
				{TypeID: "any-percent", Entry: TimeEntry{EntryBase: EntryBase{Date: date}, Duration: duration}},
				{TypeID: "story", Entry: CompletedAtDifficultyEntry{EntryBase: EntryBase{Date: date}, Difficulty: "hard"}},
			},
		},
		{
			Name: "Tetris",
			RecordTypes: []RecordType{
				{ID: "marathon", Kind: KindHighScore, DisplayName: "Marathon", Description: "Classic marathon mode"},
				{ID: "clear", Kind: KindCompleted, DisplayName: "First Clear"},
			},
			Records: []Record{
				{TypeID: "marathon", Entry: ScoreEntry{EntryBase: EntryBase{Date: date}, Value: 999999}},
				{TypeID: "clear", Entry: CompletedEntry{EntryBase{Date: date, Description: "finally"}}},
			},
		},
	}}
}

func TestLedger_RoundTrip(t *testing.T) {
	led := buildLedger(t)

	data, err := led.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	result := ValidateBytes(data)
	if !result.Valid {
		t.Fatalf("encoded ledger does not validate: %v", result.Err())
	}

	got := result.Ledger
	if len(got.Games) != len(led.Games) {
		t.Fatalf("len(games) = %d, want %d", len(got.Games), len(led.Games))
	}
	for i := range led.Games {
		want := led.Games[i]
		if got.Games[i].Name != want.Name {
			t.Errorf("game[%d] = %q, want %q", i, got.Games[i].Name, want.Name)
		}
		if len(got.Games[i].Records) != len(want.Records) {
			t.Errorf("game %q records = %d, want %d", want.Name, len(got.Games[i].Records), len(want.Records))
		}
		for j, r := range got.Games[i].Records {
			if r.Entry.Variant() != want.Records[j].Entry.Variant() {
				t.Errorf("game %q record[%d] variant = %s, want %s",
					want.Name, j, r.Entry.Variant(), want.Records[j].Entry.Variant())
			}
		}
	}
}

func TestLedger_MarshalPreservesGameOrder(t *testing.T) {
	led := &Ledger{}
	for i := 0; i < 8; i++ {
		if err := led.AddGame(Game{Name: fmt.Sprintf("Game %d", i)}); err != nil {
			t.Fatal(err)
		}
	}

	data, err := led.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	doc := string(data)
	last := -1
	for i := 0; i < 8; i++ {
		pos := strings.Index(doc, fmt.Sprintf("%q", fmt.Sprintf("Game %d", i)))
		if pos < 0 {
			t.Fatalf("Game %d missing from output", i)
		}
		if pos < last {
			t.Fatalf("Game %d appears out of order", i)
		}
		last = pos
	}
}

func TestLedger_EncodeIndent(t *testing.T) {
	data, err := buildLedger(t).EncodeIndent()
	if err != nil {
		t.Fatalf("EncodeIndent failed: %v", err)
	}

	doc := string(data)
	if !strings.HasSuffix(doc, "\n") {
		t.Error("output should end with a newline")
	}
	if !strings.Contains(doc, "  \"Celeste\"") && !strings.Contains(doc, "\"Celeste\"") {
		t.Error("output should contain the game name")
	}

	// Indented output validates the same as compact output.
	result := ValidateBytes(data)
	if !result.Valid {
		t.Fatalf("indented output does not validate: %v", result.Err())
	}
	if result.Summary.Records != 4 {
		t.Errorf("summary records = %d, want 4", result.Summary.Records)
	}
}

func TestLedger_MarshalEmpty(t *testing.T) {
	led := &Ledger{}
	data, err := led.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Errorf("empty ledger = %s, want {}", data)
	}
}
