package models

// SessionType classifies a timetabled slot. Theory lectures are
// division-wide; labs and tutorials run per batch.
type SessionType string

const (
	Theory   SessionType = "THEORY"
	Lab      SessionType = "LAB"
	Tutorial SessionType = "TUTORIAL"
)

// Enrollment is one subject allocation for a student, taken from a
// roster sheet. Division and Batch keep their raw spreadsheet form;
// Subject has known misspellings already corrected.
type Enrollment struct {
	Subject  string `json:"subject"`
	Division string `json:"division"`
	Batch    string `json:"batch"`
}

// ClassInstance is a single slot in a student's personal weekly
// timetable. StartTime is a bare "H:MM" clock string as it appears on
// the grid. DurationHours is the real session length; RowSpan is the
// quantized number of grid rows used for rendering only.
type ClassInstance struct {
	Day           string      `json:"day"`
	StartTime     string      `json:"start_time"`
	DurationHours float64     `json:"duration_hours"`
	RowSpan       int         `json:"row_span"`
	Subject       string      `json:"subject"`
	Type          SessionType `json:"type"`
	Venue         string      `json:"venue"`
}

// SessionKey identifies a (subject, session type) pair for semester
// totals and attendance percentages.
type SessionKey struct {
	Subject string      `json:"subject"`
	Type    SessionType `json:"type"`
}
