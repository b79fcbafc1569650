package attendance

import (
	"sort"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
)

// AttendanceTarget is the institution's minimum attendance fraction.
const AttendanceTarget = 0.75

// Summarize builds the attendance calculator rows for one student:
// attended vs semester totals per (subject, type) pair, the resulting
// percentage and how many more sessions are needed to reach the 75%
// requirement. Rows are sorted by subject then type for stable output.
func Summarize(mis string, totals map[models.SessionKey]int, tracker *Tracker) []models.SubjectAttendance {
	keys := make([]models.SessionKey, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Subject != keys[j].Subject {
			return keys[i].Subject < keys[j].Subject
		}
		return keys[i].Type < keys[j].Type
	})

	summaries := make([]models.SubjectAttendance, 0, len(keys))
	for _, key := range keys {
		total := totals[key]
		attended := tracker.CountMatching(mis, key.Subject, string(key.Type))

		percentage := 0.0
		if total > 0 {
			percentage = float64(attended) / float64(total) * 100
		}

		needed := 0
		if shortfall := AttendanceTarget*float64(total) - float64(attended); shortfall > 0 {
			needed = int(shortfall) + 1
		}

		summaries = append(summaries, models.SubjectAttendance{
			Subject:     key.Subject,
			Type:        key.Type,
			Attended:    attended,
			Total:       total,
			Percentage:  percentage,
			NeededFor75: needed,
		})
	}
	return summaries
}
