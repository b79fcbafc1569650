package schedule

import (
	"testing"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
)

func rosterTables() []dataset.Table {
	return []dataset.Table{
		{
			Name:    "physics_allocation.xlsx",
			Headers: []string{"MIS No", "Student Name", "Branch", "Subject Title", "Division", "Batch"},
			Rows: [][]string{
				{"612572034.0", "Asha Patil", "AIML", "Quantun Physics", "Division 2", "B1"},
				{"612572099.0", "Rohan Shah", "AIML", "Quantun Physics", "Division 1", "B2"},
			},
		},
		{
			Name:    "maths_allocation.xlsx",
			Headers: []string{"MIS", "Name", "Branch", "Subject", "Division", "Batch"},
			Rows: [][]string{
				{"612572034", "", "", "Engineering Maths", "2", "-"},
			},
		},
		{
			// No student-ID column at all; must be skipped.
			Name:    "venue_list.xlsx",
			Headers: []string{"Venue", "Capacity"},
			Rows: [][]string{
				{"A101", "60"},
			},
		},
	}
}

func TestResolveEnrollments(t *testing.T) {
	enrollments, name, branch := ResolveEnrollments("612572034", rosterTables())

	if name != "Asha Patil" || branch != "AIML" {
		t.Errorf("profile = (%q, %q), want (Asha Patil, AIML)", name, branch)
	}
	if len(enrollments) != 2 {
		t.Fatalf("got %d enrollments, want 2", len(enrollments))
	}
	if enrollments[0].Subject != "Quantum Physics" {
		t.Errorf("misspelling not corrected: %q", enrollments[0].Subject)
	}
	if enrollments[0].Division != "Division 2" || enrollments[0].Batch != "B1" {
		t.Errorf("first enrollment = %+v", enrollments[0])
	}
	if enrollments[1].Subject != "Engineering Maths" {
		t.Errorf("second table should contribute its subject, got %q", enrollments[1].Subject)
	}
}

func TestResolveEnrollmentsFloatSerializedID(t *testing.T) {
	// The sheet stores "612572034.0"; the student types "612572034".
	enrollments, _, _ := ResolveEnrollments("612572034", rosterTables())
	if len(enrollments) == 0 {
		t.Fatal("float-serialized MIS should still match")
	}
}

func TestResolveEnrollmentsNameFromFirstTableOnly(t *testing.T) {
	tables := rosterTables()
	// Swap so the table with the blank name comes first; the later
	// table should then win the name without losing enrollments.
	tables[0], tables[1] = tables[1], tables[0]

	enrollments, name, _ := ResolveEnrollments("612572034", tables)
	if name != "Asha Patil" {
		t.Errorf("blank name must not take precedence, got %q", name)
	}
	if len(enrollments) != 2 {
		t.Errorf("got %d enrollments, want 2", len(enrollments))
	}
}

func TestResolveEnrollmentsNotFound(t *testing.T) {
	enrollments, name, branch := ResolveEnrollments("999999999", rosterTables())
	if len(enrollments) != 0 {
		t.Errorf("unknown MIS should yield no enrollments, got %d", len(enrollments))
	}
	if name != UnknownStudent || branch != UnknownStudent {
		t.Errorf("unknown MIS should yield sentinel profile, got (%q, %q)", name, branch)
	}
}
