package timetable

import (
	"errors"
	"strings"
)

// ErrEmptySelection is returned when schedule assembly is invoked with no
// selected courses. It is a user-input validation error, not a data error.
var ErrEmptySelection = errors.New("no courses selected")

// Options control display policies during assembly.
type Options struct {
	// ShowAssessmentRooms keeps the room on quiz/exam events. By default
	// assessments are shown without a venue.
	ShowAssessmentRooms bool
}

// Assemble builds the full date -> slot -> events mapping for the given
// selection. Every run starts fresh: the fill-down date state lives in this
// call and the returned map replaces any previous one wholesale.
//
// Each row with a resolvable (or inherited) date gets a map entry even when
// nothing in it matches, so a day the student is on campus for but has no
// classes on can be reported as a free day.
func Assemble(rows []Row, slots []Slot, selected []string, opts Options) (ScheduleMap, error) {
	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}

	schedule := make(ScheduleMap)
	lastDate := ""

	for _, row := range rows {
		var date string
		date, lastDate = resolveRowDate(row, slots, lastDate)
		if date == "" {
			continue
		}

		day, ok := schedule[date]
		if !ok {
			day = make(DaySchedule)
			schedule[date] = day
		}
		room := strings.TrimSpace(row.Cell(1))

		for _, slot := range slots {
			cell := strings.TrimSpace(row.Cell(slot.Index))
			if len(cell) <= 1 {
				continue
			}

			name := ExtractCourseName(cell)
			if name == "" {
				continue
			}
			kind := Classify(cell)

			if !matchesSelection(name, kind, selected) {
				continue
			}

			eventRoom := room
			if kind.IsAssessment() && !opts.ShowAssessmentRooms {
				eventRoom = ""
			}

			// Append, never replace: parallel sections share a slot.
			day[slot.Index] = append(day[slot.Index], Event{
				Text: cell,
				Room: eventRoom,
				Kind: kind,
			})
		}
	}

	return schedule, nil
}
