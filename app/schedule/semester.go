package schedule

import (
	"time"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
)

// SemesterTotals counts how many times each (subject, type) pair of a
// weekly schedule actually occurs between the semester bounds,
// inclusive. The walk is exact: it visits every calendar date and
// matches weekday names, so truncated first/last weeks are counted
// correctly rather than estimated from weeks-times-occurrences.
func SemesterTotals(instances []models.ClassInstance, start, end time.Time) map[models.SessionKey]int {
	weekly := make(map[string][]models.SessionKey)
	totals := make(map[models.SessionKey]int)
	for _, instance := range instances {
		key := models.SessionKey{Subject: instance.Subject, Type: instance.Type}
		weekly[instance.Day] = append(weekly[instance.Day], key)
		totals[key] = 0
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		for _, key := range weekly[d.Weekday().String()] {
			totals[key]++
		}
	}
	return totals
}
