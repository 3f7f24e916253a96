package ledger

import "testing"

func TestParseKind(t *testing.T) {
	for _, s := range ValidKinds() {
		k, err := ParseKind(s)
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", s, err)
		}
		if string(k) != s {
			t.Errorf("ParseKind(%q) = %q", s, k)
		}
	}

	for _, s := range []string{"", "speedrun", "COMPLETED", "fastest time"} {
		if _, err := ParseKind(s); err == nil {
			t.Errorf("ParseKind(%q) should fail", s)
		}
	}
}

func TestKind_Variant(t *testing.T) {
	cases := map[Kind]Variant{
		KindCompleted:             VariantCompleted,
		KindCompletedAtDifficulty: VariantCompletedAtDifficulty,
		KindFastestTime:           VariantTime,
		KindLongestTime:           VariantTime,
		KindHighScore:             VariantScore,
		KindLowScore:              VariantScore,
	}
	for k, want := range cases {
		if got := k.Variant(); got != want {
			t.Errorf("%s.Variant() = %s, want %s", k, got, want)
		}
	}
}

func TestKind_RequiresDifficulty(t *testing.T) {
	if !KindCompletedAtDifficulty.RequiresDifficulty() {
		t.Error("completed_at_difficulty should require difficulties")
	}
	for _, k := range []Kind{KindCompleted, KindFastestTime, KindLongestTime, KindHighScore, KindLowScore} {
		if k.RequiresDifficulty() {
			t.Errorf("%s should not require difficulties", k)
		}
	}
}

func TestVariant_PayloadField(t *testing.T) {
	cases := map[Variant]string{
		VariantCompleted:             "",
		VariantCompletedAtDifficulty: "difficulty",
		VariantTime:                  "duration_seconds",
		VariantScore:                 "value",
	}
	for v, want := range cases {
		if got := v.PayloadField(); got != want {
			t.Errorf("%s.PayloadField() = %q, want %q", v, got, want)
		}
	}
}
