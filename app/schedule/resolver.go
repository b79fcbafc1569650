package schedule

import (
	"strings"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
)

// SessionTypeOf classifies a free-text slot type. Anything that is not
// a lab or tutorial is a theory lecture.
func SessionTypeOf(raw string) models.SessionType {
	clean := strings.ToLower(raw)
	switch {
	case strings.Contains(clean, "lab"):
		return models.Lab
	case strings.Contains(clean, "tutorial"):
		return models.Tutorial
	default:
		return models.Theory
	}
}

// ResolveSchedule joins a student's enrollments against the master
// timetable and returns their personal weekly schedule. For each
// enrollment it accepts master rows whose subject fuzzy-matches and
// whose division key is equal; theory rows are division-wide, while
// lab and tutorial rows must also carry the student's batch (or no
// batch restriction at all). Duplicate master rows producing the same
// (day, start, subject) are dropped, first match wins.
func ResolveSchedule(enrollments []models.Enrollment, master *dataset.Table) []models.ClassInstance {
	if master == nil || len(enrollments) == 0 {
		return nil
	}

	subCol, ok := master.Column("subject")
	if !ok {
		return nil
	}
	divCol, hasDiv := master.Column("division")
	batchCol, hasBatch := master.Column("batch")
	typeCol, hasType := master.Column("type")
	timeCol, hasTime := master.Column("time")
	dayCol, hasDay := master.Column("day")
	venueCol, hasVenue := master.Column("venue")
	if !hasTime || !hasDay {
		return nil
	}

	seen := make(map[string]bool)
	var instances []models.ClassInstance
	for _, enrollment := range enrollments {
		subjectKey := CleanText(enrollment.Subject)
		divisionKey := NormalizeDivision(enrollment.Division)
		batchKey := NormalizeBatch(enrollment.Batch)

		for row := 0; row < master.RowCount(); row++ {
			if !IsFuzzyMatch(subjectKey, CleanText(master.Value(row, subCol))) {
				continue
			}
			rowDivision := ""
			if hasDiv {
				rowDivision = master.Value(row, divCol)
			}
			if NormalizeDivision(rowDivision) != divisionKey {
				continue
			}

			sessionType := models.Theory
			if hasType {
				sessionType = SessionTypeOf(master.Value(row, typeCol))
			}
			rowBatch := BatchAll
			if hasBatch {
				rowBatch = NormalizeBatch(master.Value(row, batchCol))
			}
			// Lectures are division-wide; labs and tutorials only apply
			// to the student's own batch.
			if sessionType != models.Theory && rowBatch != BatchAll && rowBatch != batchKey {
				continue
			}

			start, hours := ParseTimeRange(master.Value(row, timeCol))
			if start == "" {
				continue
			}

			day := titleCase(strings.TrimSpace(master.Value(row, dayCol)))
			dedupeKey := day + "|" + start + "|" + enrollment.Subject
			if seen[dedupeKey] {
				continue
			}
			seen[dedupeKey] = true

			venue := "-"
			if hasVenue {
				if v := strings.TrimSpace(master.Value(row, venueCol)); v != "" && strings.ToLower(v) != "nan" {
					venue = v
				}
			}

			instances = append(instances, models.ClassInstance{
				Day:           day,
				StartTime:     start,
				DurationHours: hours,
				RowSpan:       RowSpan(hours),
				Subject:       enrollment.Subject,
				Type:          sessionType,
				Venue:         venue,
			})
		}
	}
	return instances
}

// LinkMap indexes subject material links by normalized subject key, so
// lookups survive the same naming variance as the schedule join.
func LinkMap(rows []dataset.LinkRow) map[string]string {
	links := make(map[string]string, len(rows))
	for _, row := range rows {
		links[CleanText(CorrectSubjectName(row.Subject))] = row.URL
	}
	return links
}

// titleCase upper-cases the first letter of each space-separated word
// and lower-cases the rest, normalizing day cells like "MONDAY " or
// "monday".
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
