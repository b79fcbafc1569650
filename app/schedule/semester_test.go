package schedule

import (
	"testing"
	"time"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSemesterTotalsExactWalk(t *testing.T) {
	instances := []models.ClassInstance{
		{Day: "Monday", StartTime: "9:30", Subject: "Data Structures", Type: models.Theory},
	}

	// 2026-01-12 is a Monday; the range holds exactly three Mondays.
	totals := SemesterTotals(instances, date("2026-01-12"), date("2026-01-26"))

	key := models.SessionKey{Subject: "Data Structures", Type: models.Theory}
	if totals[key] != 3 {
		t.Errorf("totals[%v] = %d, want 3", key, totals[key])
	}
}

func TestSemesterTotalsTruncatedWeek(t *testing.T) {
	instances := []models.ClassInstance{
		{Day: "Monday", StartTime: "9:30", Subject: "DSA", Type: models.Theory},
		{Day: "Friday", StartTime: "2:30", Subject: "DSA", Type: models.Lab},
	}

	// Tuesday through Thursday: neither weekday occurs.
	totals := SemesterTotals(instances, date("2026-01-13"), date("2026-01-15"))

	if got := totals[models.SessionKey{Subject: "DSA", Type: models.Theory}]; got != 0 {
		t.Errorf("theory count = %d, want 0", got)
	}
	if got := totals[models.SessionKey{Subject: "DSA", Type: models.Lab}]; got != 0 {
		t.Errorf("lab count = %d, want 0", got)
	}
	// Keys must still exist, initialized to zero.
	if len(totals) != 2 {
		t.Errorf("every weekly pair must have a counter, got %v", totals)
	}
}

func TestSemesterTotalsMultiplePerWeek(t *testing.T) {
	instances := []models.ClassInstance{
		{Day: "Monday", StartTime: "9:30", Subject: "Maths", Type: models.Theory},
		{Day: "Wednesday", StartTime: "9:30", Subject: "Maths", Type: models.Theory},
	}

	// One full week: one Monday and one Wednesday.
	totals := SemesterTotals(instances, date("2026-01-12"), date("2026-01-18"))

	key := models.SessionKey{Subject: "Maths", Type: models.Theory}
	if totals[key] != 2 {
		t.Errorf("totals[%v] = %d, want 2", key, totals[key])
	}
}
