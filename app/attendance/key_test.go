package attendance

import (
	"testing"
	"time"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
)

func TestBuildKey(t *testing.T) {
	date := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	got := BuildKey("612572034", date, "Data Structures", models.Theory, "9:30")
	want := "612572034_2026-02-03_Data Structures_THEORY_9:30"
	if got != want {
		t.Errorf("BuildKey = %q, want %q", got, want)
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	date := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	key := BuildKey("612572034", date, "Quantum Physics", models.Lab, "11:30")

	record, err := ParseKey(key)
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if record.MIS != "612572034" || record.Date != "2026-02-03" ||
		record.Subject != "Quantum Physics" || record.Type != "LAB" || record.StartTime != "11:30" {
		t.Errorf("record = %+v", record)
	}
}

func TestParseKeySubjectWithUnderscores(t *testing.T) {
	// Underscore-bearing subjects reassemble from the middle parts.
	record, err := ParseKey("612572034_2026-02-03_AI_ML_Foundations_LAB_2:30")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if record.Subject != "AI_ML_Foundations" {
		t.Errorf("subject = %q, want AI_ML_Foundations", record.Subject)
	}
	if record.Type != "LAB" || record.StartTime != "2:30" {
		t.Errorf("trailing fields = (%q, %q)", record.Type, record.StartTime)
	}
}

func TestParseKeyMalformed(t *testing.T) {
	for _, key := range []string{"", "too_few_parts", "a_b_c_d"} {
		if _, err := ParseKey(key); err == nil {
			t.Errorf("ParseKey(%q) should fail", key)
		}
	}
}
