package schedule

import (
	"strings"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
)

// UnknownStudent is the sentinel name/branch returned when no roster
// sheet contains the MIS. Callers treat it as "student not found".
const UnknownStudent = "Unknown"

// ResolveEnrollments locates every subject allocation for a student
// across the roster sheets. A student's subjects are usually split over
// several sheets, one per department or subject group, so every sheet
// is scanned; the first sheet that yields a non-empty name wins the
// name/branch, and the rest only contribute enrollments.
func ResolveEnrollments(studentID string, rosters []dataset.Table) ([]models.Enrollment, string, string) {
	name, branch := UnknownStudent, UnknownStudent
	target := CleanStudentID(studentID)

	var enrollments []models.Enrollment
	for i := range rosters {
		table := &rosters[i]
		idCol, ok := table.Column("student_id")
		if !ok {
			continue
		}

		for row := 0; row < table.RowCount(); row++ {
			if CleanStudentID(table.Value(row, idCol)) != target {
				continue
			}

			if name == UnknownStudent {
				name = lookupField(table, row, "name", name)
				branch = lookupField(table, row, "branch", branch)
			}

			subCol, ok := table.Column("subject")
			if !ok {
				// Sheet has no subject column; the row identifies the
				// student but carries no allocation.
				continue
			}
			subject := strings.TrimSpace(table.Value(row, subCol))
			if subject == "" {
				continue
			}

			enrollment := models.Enrollment{Subject: CorrectSubjectName(subject)}
			if divCol, ok := table.Column("division"); ok {
				enrollment.Division = strings.TrimSpace(table.Value(row, divCol))
			}
			if batchCol, ok := table.Column("batch"); ok {
				enrollment.Batch = strings.TrimSpace(table.Value(row, batchCol))
			}
			enrollments = append(enrollments, enrollment)
		}
	}
	return enrollments, name, branch
}

func lookupField(table *dataset.Table, row int, role, fallback string) string {
	col, ok := table.Column(role)
	if !ok {
		return fallback
	}
	if v := strings.TrimSpace(table.Value(row, col)); v != "" {
		return v
	}
	return fallback
}
