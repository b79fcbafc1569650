package schedule

import (
	"regexp"
	"strings"
)

var (
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]`)
	digitRunPattern = regexp.MustCompile(`\d+`)
)

// subjectCorrections patches known typos in the source spreadsheets.
// This is a fixed data set, so an explicit table beats a spell-checker.
var subjectCorrections = map[string]string{
	"Quantun Physics": "Quantum Physics",
}

// CorrectSubjectName applies the known-misspelling table to a subject
// name. Anything not in the table passes through unchanged.
func CorrectSubjectName(raw string) string {
	s := raw
	for wrong, right := range subjectCorrections {
		s = strings.ReplaceAll(s, wrong, right)
	}
	return s
}

// CleanText reduces free text to a comparison key: lower-cased with
// everything except ASCII letters and digits stripped.
func CleanText(raw string) string {
	return nonAlnumPattern.ReplaceAllString(strings.ToLower(raw), "")
}

// CleanStudentID normalizes an MIS number. Spreadsheets that store the
// MIS as a number serialize it with a trailing ".0", so "612572034.0"
// and "612572034" must compare equal.
func CleanStudentID(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, ".0") {
		s = s[:len(s)-2]
	}
	return CleanText(s)
}

// NormalizeDivision reduces "2", "Division 2" and "Div 2" to "2". When
// no digits are present the division/div words are stripped and the
// remainder is the key.
func NormalizeDivision(raw string) string {
	clean := strings.ToLower(raw)
	if num := digitRunPattern.FindString(clean); num != "" {
		return num
	}
	clean = strings.ReplaceAll(clean, "division", "")
	clean = strings.ReplaceAll(clean, "div", "")
	return strings.TrimSpace(clean)
}

// BatchAll means a slot applies to every batch in the division.
const BatchAll = "all"

// NormalizeBatch reduces "B1", "Batch 1" and " B 1 " to "b1". Blank
// and placeholder values mean the slot has no batch restriction and
// normalize to BatchAll.
func NormalizeBatch(raw string) string {
	clean := strings.ReplaceAll(strings.ToLower(raw), " ", "")
	switch clean {
	case "-", "nan", "", "_":
		return BatchAll
	}
	if num := digitRunPattern.FindString(clean); num != "" {
		return "b" + num
	}
	return BatchAll
}
