package timetable

import "strings"

// ExtractCourseName normalizes a raw cell into a canonical course identifier.
// It collapses whitespace runs, drops a trailing pure-numeric session token
// ("BFSI A 1" -> "BFSI A"), and returns "" for plain lunch/break markers.
// Only text that exactly equals "lunch" or "break" is rejected, so a course
// name that merely contains one of those words survives.
func ExtractCourseName(raw string) string {
	clean := strings.Join(strings.Fields(raw), " ")
	if clean == "" {
		return ""
	}

	lower := strings.ToLower(clean)
	if lower == "lunch" || lower == "break" {
		return ""
	}

	parts := strings.Split(clean, " ")
	if len(parts) > 1 && isNumeric(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, " ")
}

// Classify derives the event kind from the raw cell text. Checked in
// precedence order: quiz prefix, exam prefixes/keywords, holiday keywords,
// otherwise a regular class.
func Classify(raw string) EventKind {
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "quiz"):
		return KindQuiz
	case strings.HasPrefix(lower, "et-"), strings.HasPrefix(lower, "mt-"),
		strings.Contains(lower, "end term"), strings.Contains(lower, "mid term"):
		return KindExam
	case strings.Contains(lower, "republic"), strings.Contains(lower, "holiday"):
		return KindHoliday
	default:
		return KindClass
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
