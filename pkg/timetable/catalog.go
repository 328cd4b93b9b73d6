package timetable

import (
	"regexp"
	"sort"
	"strings"
)

// junkKeywords hide header/admin noise from the course list. "lunch" is
// deliberately not in here so that lunch-slot quiz rows still parse; plain
// lunch/break markers are already rejected by ExtractCourseName.
var junkKeywords = []string{
	"date", "day", "time", "slot", "classroom",
	"session", "term", "sister", "single", "activity",
}

var timeOfDayPattern = regexp.MustCompile(`\d{1,2}:\d{2}`)

// BuildCatalog scans every row and configured slot once and returns the
// distinct selectable course identifiers, sorted for display. Assessment
// entries (Quiz-/ET-/MT-) are filtered out here: students select the course
// itself and the matching rule pulls its quizzes and exams in later.
func BuildCatalog(rows []Row, slots []Slot) []string {
	seen := make(map[string]bool)

	for _, row := range rows {
		for _, slot := range slots {
			cell := row.Cell(slot.Index)
			if len(strings.TrimSpace(cell)) <= 1 {
				continue
			}
			name := ExtractCourseName(cell)
			if name == "" || !isSelectable(name) {
				continue
			}
			seen[name] = true
		}
	}

	catalog := make([]string, 0, len(seen))
	for name := range seen {
		catalog = append(catalog, name)
	}
	sort.Strings(catalog)
	return catalog
}

// isSelectable applies the catalog-only exclusion filters. These only keep
// noise out of the selection list; schedule assembly still parses and
// matches everything it filters.
func isSelectable(name string) bool {
	lower := strings.ToLower(name)

	for _, kw := range junkKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	if strings.Contains(lower, "academic office") {
		return false
	}
	if timeOfDayPattern.MatchString(name) {
		return false
	}
	if strings.HasPrefix(lower, "quiz") || strings.HasPrefix(lower, "et-") || strings.HasPrefix(lower, "mt-") {
		return false
	}
	if strings.Contains(lower, "registration") || strings.Contains(lower, "republic") {
		return false
	}
	return true
}
