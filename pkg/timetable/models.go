package timetable

import "sort"

// Row is one raw line from the source timetable: column 0 holds the date
// token (possibly blank when the spreadsheet merged date cells), column 1
// the room, and the configured slot columns the event text. Rows may be
// shorter than the highest slot index.
type Row []string

// Cell returns the cell at index i, or "" when the row is too short.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// EventKind classifies a timetable entry based on its text.
type EventKind int

const (
	KindClass EventKind = iota
	KindQuiz
	KindExam
	KindHoliday
)

func (k EventKind) String() string {
	switch k {
	case KindQuiz:
		return "quiz"
	case KindExam:
		return "exam"
	case KindHoliday:
		return "holiday"
	default:
		return "class"
	}
}

// Description returns the human wording used in calendar exports.
func (k EventKind) Description() string {
	switch k {
	case KindQuiz:
		return "Quiz / Assessment"
	case KindExam:
		return "End Term / Mid Term Exam"
	case KindHoliday:
		return "Holiday"
	default:
		return "Class Session"
	}
}

// IsAssessment reports whether the entry is a quiz or an exam. Assessments
// get the linkage matching rule and, by default, no venue display.
func (k EventKind) IsAssessment() bool {
	return k == KindQuiz || k == KindExam
}

// Event is one matched entry in a slot on a date. Immutable once appended.
type Event struct {
	Text string    `json:"text"`
	Room string    `json:"room"`
	Kind EventKind `json:"kind"`
}

// DaySchedule maps slot index -> events in row order. Parallel sections can
// legitimately put several events into the same slot.
type DaySchedule map[int][]Event

// ScheduleMap maps ISO date (YYYY-MM-DD) -> that day's slots. A date present
// with an empty DaySchedule is an explicitly free day, which is not the same
// thing as a date that never appeared in the source.
type ScheduleMap map[string]DaySchedule

// Dates returns the map's date keys in ascending order.
func (m ScheduleMap) Dates() []string {
	dates := make([]string, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// EventCount counts every event across all dates and slots.
func (m ScheduleMap) EventCount() int {
	n := 0
	for _, day := range m {
		for _, events := range day {
			n += len(events)
		}
	}
	return n
}
