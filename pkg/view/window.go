// Package view projects an assembled schedule into the reduced shapes a
// display or export surface needs: week/month date windows and per-day
// merged slot runs. It does no rendering of its own.
package view

import (
	"sort"
	"time"

	"slotwise/pkg/timetable"
)

// Mode selects the display window.
type Mode string

const (
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
)

const isoDate = "2006-01-02"

// WeekWindow returns the 7 ISO dates of the Monday-starting week containing
// the anchor, whether or not the schedule knows them.
func WeekWindow(anchor time.Time) []string {
	monday := startOfWeek(anchor)
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = monday.AddDate(0, 0, i).Format(isoDate)
	}
	return dates
}

// MonthWindow returns, in order, every date key present in the schedule
// whose year and month match the anchor. Dates the source never mentioned
// do not appear; that distinguishes them from explicitly free days.
func MonthWindow(m timetable.ScheduleMap, anchor time.Time) []string {
	prefix := anchor.Format("2006-01")
	var dates []string
	for d := range m {
		if len(d) >= 7 && d[:7] == prefix {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}

// Window dispatches on the mode.
func Window(m timetable.ScheduleMap, mode Mode, anchor time.Time) []string {
	if mode == ModeMonth {
		return MonthWindow(m, anchor)
	}
	return WeekWindow(anchor)
}

// Title renders the human heading for the current window, e.g.
// "Jan 5 - Jan 11, 2026" or "January 2026".
func Title(mode Mode, anchor time.Time) string {
	if mode == ModeMonth {
		return anchor.Format("January 2006")
	}
	monday := startOfWeek(anchor)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format("Jan 2") + " - " + sunday.Format("Jan 2, 2006")
}

// Step moves the anchor one window in the given direction (+1 or -1).
// Month steps snap to the first of the month so repeated navigation cannot
// skip a short month.
func Step(mode Mode, anchor time.Time, direction int) time.Time {
	if mode == ModeMonth {
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return first.AddDate(0, direction, 0)
	}
	return anchor.AddDate(0, 0, 7*direction)
}

func startOfWeek(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the preceding Monday's week
	}
	return d.AddDate(0, 0, -offset)
}
