package attendance

import (
	"testing"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
)

func TestSummarize(t *testing.T) {
	tracker := NewTracker(nil)
	// 6 of 20 theory sessions attended.
	dates := []string{"2026-01-12", "2026-01-19", "2026-01-26", "2026-02-02", "2026-02-09", "2026-02-16"}
	for _, d := range dates {
		tracker.records["612572034_"+d+"_Data Structures_THEORY_9:30"] = true
	}

	totals := map[models.SessionKey]int{
		{Subject: "Data Structures", Type: models.Theory}: 20,
		{Subject: "Data Structures", Type: models.Lab}:    10,
	}

	summaries := Summarize("612572034", totals, tracker)
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	lab, theory := summaries[0], summaries[1]
	if lab.Type != models.Lab || theory.Type != models.Theory {
		t.Fatalf("summaries out of order: %+v", summaries)
	}

	if theory.Attended != 6 || theory.Total != 20 {
		t.Errorf("theory counts = (%d, %d), want (6, 20)", theory.Attended, theory.Total)
	}
	if theory.Percentage != 30.0 {
		t.Errorf("theory percentage = %v, want 30.0", theory.Percentage)
	}
	// 75%% of 20 is 15, shortfall 9; the counter always rounds up past
	// the bare minimum, so 10 is advised.
	if theory.NeededFor75 != 10 {
		t.Errorf("theory needed = %d, want 10", theory.NeededFor75)
	}

	if lab.Attended != 0 || lab.Percentage != 0.0 {
		t.Errorf("lab = %+v", lab)
	}
	// 75%% of 10 is 7.5; shortfall 7.5 truncates to 7, plus one = 8.
	if lab.NeededFor75 != 8 {
		t.Errorf("lab needed = %d, want 8", lab.NeededFor75)
	}
}

func TestSummarizeSafeSubject(t *testing.T) {
	tracker := NewTracker(nil)
	for _, d := range []string{"2026-01-12", "2026-01-19", "2026-01-26"} {
		tracker.records["612572034_"+d+"_Maths_THEORY_9:30"] = true
	}

	totals := map[models.SessionKey]int{
		{Subject: "Maths", Type: models.Theory}: 4,
	}

	summaries := Summarize("612572034", totals, tracker)
	if summaries[0].NeededFor75 != 0 {
		t.Errorf("3/4 attended is at 75%%, needed = %d, want 0", summaries[0].NeededFor75)
	}
	if summaries[0].Percentage != 75.0 {
		t.Errorf("percentage = %v, want 75.0", summaries[0].Percentage)
	}
}

func TestSummarizeZeroTotal(t *testing.T) {
	tracker := NewTracker(nil)
	totals := map[models.SessionKey]int{
		{Subject: "Maths", Type: models.Theory}: 0,
	}

	summaries := Summarize("612572034", totals, tracker)
	if summaries[0].Percentage != 0.0 || summaries[0].NeededFor75 != 0 {
		t.Errorf("zero-total summary = %+v", summaries[0])
	}
}
