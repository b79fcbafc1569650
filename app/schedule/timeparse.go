package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// GridSlots are the canonical start times of the display grid, one per
// period boundary. Afternoon periods are written 12-hour style, the way
// the institution labels them.
var GridSlots = []string{"8:30", "9:30", "10:30", "11:30", "12:30", "1:30", "2:30", "3:30", "4:30", "5:30"}

// WeekDays are the teaching days of the grid, Monday first.
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

const (
	// durationNoiseMinutes separates a real end time from noise: a
	// start/end difference at or below this is treated as the default
	// one-hour session. Tuned against the source sheets, where plain
	// one-hour lectures are often written with sloppy end times.
	durationNoiseMinutes = 80

	// gridSlotToleranceMinutes is how far a start time may sit from a
	// grid slot and still be placed in it.
	gridSlotToleranceMinutes = 45
)

var clockPattern = regexp.MustCompile(`\d{1,2}:\d{2}`)

// ParseTimeRange converts a free-text time cell ("8.30-9.30",
// "14:00 TO 15:30") into a canonical start time and a duration in
// hours. It never fails: unparseable input yields ("", 1.0), and a
// missing or noisy end time yields the default one-hour duration. An
// end time that reads earlier than the start ("11:30-1:30") is taken
// as a 12-hour ambiguity and shifted forward before differencing.
func ParseTimeRange(raw string) (string, float64) {
	s := strings.ToUpper(raw)
	s = strings.NewReplacer(".", ":", "-", " ", "TO", " ").Replace(s)

	times := clockPattern.FindAllString(s, -1)
	if len(times) == 0 {
		return "", 1.0
	}

	start := strings.TrimLeft(times[0], "0")
	duration := 1.0
	if len(times) >= 2 {
		startMin, okStart := ClockMinutes(start)
		endMin, okEnd := ClockMinutes(times[1])
		if okStart && okEnd {
			diff := endMin - startMin
			if diff < 0 {
				diff += 12 * 60
			}
			if diff > durationNoiseMinutes {
				duration = float64(diff) / 60
			}
		}
	}
	return start, duration
}

// ClockMinutes parses an "H:MM" string into minutes since midnight.
func ClockMinutes(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// MapToGridSlot finds the grid slot closest to a start time, within
// the placement tolerance. "" means the class cannot be placed on the
// visual grid; it still counts for attendance and semester totals.
func MapToGridSlot(startTime string) string {
	t, ok := ClockMinutes(startTime)
	if !ok {
		return ""
	}
	best, bestDiff := "", -1
	for _, slot := range GridSlots {
		s, _ := ClockMinutes(slot)
		diff := t - s
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = slot, diff
		}
	}
	if bestDiff >= 0 && bestDiff <= gridSlotToleranceMinutes {
		return best
	}
	return ""
}

// RowSpan quantizes a fractional duration into whole grid rows for
// rendering. The real duration stays on the ClassInstance.
func RowSpan(hours float64) int {
	switch {
	case hours <= 1.2:
		return 1
	case hours <= 2.2:
		return 2
	default:
		return 3
	}
}
