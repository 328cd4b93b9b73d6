package timetable

import (
	"regexp"
	"strings"
)

var assessmentPrefix = regexp.MustCompile(`(?i)^(Quiz-|ET-|MT-)`)

// startsWithWordBoundary reports whether candidate begins with base followed
// by a word boundary, case-insensitively. The boundary is what keeps a quiz
// base like "IBS" from matching a selected course "IBSCG A" while still
// matching "IBS A".
func startsWithWordBoundary(base, candidate string) bool {
	if base == "" {
		return false
	}
	re, err := regexp.Compile(`(?i)^` + regexp.QuoteMeta(base) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(candidate)
}

// matchesSelection decides whether a parsed cell belongs to the student's
// selection. Direct name membership first; for quizzes and exams the
// assessment prefix is stripped and the remaining base is tested as an
// anchored prefix of each selected course, so picking "BFSI A" also pulls
// in "Quiz-BFSI" and "ET-BFSI" without selecting them separately.
func matchesSelection(name string, kind EventKind, selected []string) bool {
	for _, sc := range selected {
		if sc == name {
			return true
		}
	}

	if !kind.IsAssessment() {
		return false
	}

	base := strings.TrimSpace(assessmentPrefix.ReplaceAllString(name, ""))
	for _, sc := range selected {
		if startsWithWordBoundary(base, sc) {
			return true
		}
	}
	return false
}
