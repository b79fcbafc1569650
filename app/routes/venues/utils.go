package venues

import (
	"strings"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/schedule"
)

// ValidateDayOfWeek validates a teaching-day name, case-insensitively.
func ValidateDayOfWeek(day string) bool {
	for _, validDay := range schedule.WeekDays {
		if strings.EqualFold(strings.TrimSpace(day), validDay) {
			return true
		}
	}
	return false
}

// ValidateClockTime validates an "H:MM" query time.
func ValidateClockTime(timeStr string) bool {
	_, ok := schedule.ClockMinutes(timeStr)
	return ok
}
