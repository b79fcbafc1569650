package schedule

import (
	"sort"
	"strings"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
)

const (
	// earlyMorningCutoffHour resolves missing AM/PM markers: the
	// institution opens at 8, so a class starting "before" that is
	// really an afternoon class written 12-hour style.
	earlyMorningCutoffHour = 8

	// freeVenueWindowMinutes is the length of the query window.
	freeVenueWindowMinutes = 60
)

// FreeVenues reports which known venues have no class overlapping the
// one-hour window starting at queryStart on the given day. Known venues
// are every distinct non-placeholder venue in the master timetable, so
// the result is independent of any particular student. Output is
// sorted for determinism.
func FreeVenues(master *dataset.Table, day, queryStart string) []string {
	if master == nil {
		return nil
	}
	venueCol, hasVenue := master.Column("venue")
	if !hasVenue {
		return nil
	}
	dayCol, hasDay := master.Column("day")
	timeCol, hasTime := master.Column("time")

	known := make(map[string]bool)
	for row := 0; row < master.RowCount(); row++ {
		if v := venueName(master.Value(row, venueCol)); v != "" {
			known[v] = true
		}
	}

	occupied := make(map[string]bool)
	qStart, qOK := ClockMinutes(queryStart)
	if qOK && hasDay && hasTime {
		qStart = shiftEarlyToPM(qStart)
		qEnd := qStart + freeVenueWindowMinutes
		wantDay := titleCase(strings.TrimSpace(day))

		for row := 0; row < master.RowCount(); row++ {
			if titleCase(strings.TrimSpace(master.Value(row, dayCol))) != wantDay {
				continue
			}
			start, hours := ParseTimeRange(master.Value(row, timeCol))
			if start == "" {
				continue
			}
			startMin, ok := ClockMinutes(start)
			if !ok {
				continue
			}
			startMin = shiftEarlyToPM(startMin)
			endMin := startMin + int(hours*60)

			// Half-open interval overlap.
			if startMin < qEnd && endMin > qStart {
				if v := venueName(master.Value(row, venueCol)); v != "" {
					occupied[v] = true
				}
			}
		}
	}

	var free []string
	for v := range known {
		if !occupied[v] {
			free = append(free, v)
		}
	}
	sort.Strings(free)
	return free
}

func shiftEarlyToPM(minutes int) int {
	if minutes < earlyMorningCutoffHour*60 {
		return minutes + 12*60
	}
	return minutes
}

func venueName(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" || v == "-" || strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}
