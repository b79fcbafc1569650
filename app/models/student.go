package models

// StudentProfile holds the identity fields resolved from the roster
// sheets. Name and Branch are "Unknown" when the MIS was not found.
type StudentProfile struct {
	MIS    string `json:"mis"`
	Name   string `json:"name"`
	Branch string `json:"branch"`
}

// SubjectAllocation is an enrollment enriched with the material link
// for the subject-allocation list.
type SubjectAllocation struct {
	Subject      string `json:"subject"`
	Division     string `json:"division"`
	Batch        string `json:"batch"`
	MaterialLink string `json:"material_link,omitempty"`
}

// SubjectAttendance is one row of the attendance calculator: sessions
// attended vs the semester total for a (subject, type) pair, and how
// many more sessions are needed to reach the 75% requirement.
type SubjectAttendance struct {
	Subject     string      `json:"subject"`
	Type        SessionType `json:"type"`
	Attended    int         `json:"attended"`
	Total       int         `json:"total"`
	Percentage  float64     `json:"percentage"`
	NeededFor75 int         `json:"needed_for_75"`
}
