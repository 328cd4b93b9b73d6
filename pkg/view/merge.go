package view

import (
	"slotwise/pkg/timetable"
)

// Cell is one display cell covering Span consecutive slots starting at
// position Start in the slot layout. Empty cells (no events) always have
// Span 1.
type Cell struct {
	Start  int
	Span   int
	Events []timetable.Event
}

// DayRow is the projected display row for one date.
type DayRow struct {
	Date  string
	Free  bool // date known to the schedule but with no matched slots
	Known bool // date present in the schedule at all
	Cells []Cell
}

// ProjectDay compresses a day's slots into display cells. Adjacent slots
// whose ordered event texts are identical merge into one wide cell, greedy
// left to right. Slots without events never merge, with each other or with
// anything else.
func ProjectDay(date string, day timetable.DaySchedule, known bool, slots []timetable.Slot) DayRow {
	row := DayRow{Date: date, Known: known}
	if len(day) == 0 {
		row.Free = known
		return row
	}

	for i := 0; i < len(slots); i++ {
		events := day[slots[i].Index]
		span := 1
		for i+span < len(slots) && sameEvents(events, day[slots[i+span].Index]) {
			span++
		}
		row.Cells = append(row.Cells, Cell{Start: i, Span: span, Events: events})
		i += span - 1
	}
	return row
}

// Project builds display rows for each date in the window.
func Project(m timetable.ScheduleMap, dates []string, slots []timetable.Slot) []DayRow {
	rows := make([]DayRow, 0, len(dates))
	for _, date := range dates {
		day, known := m[date]
		rows = append(rows, ProjectDay(date, day, known, slots))
	}
	return rows
}

// sameEvents compares two slots' ordered event texts. Two empty slots are
// not considered the same, so free stretches stay one column wide each.
func sameEvents(a, b []timetable.Event) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Text != b[i].Text {
			return false
		}
	}
	return true
}
