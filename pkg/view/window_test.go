package view

import (
	"reflect"
	"testing"
	"time"

	"slotwise/pkg/timetable"
)

func TestWeekWindow(t *testing.T) {
	// 2025-12-17 is a Wednesday
	anchor := time.Date(2025, 12, 17, 15, 30, 0, 0, time.UTC)
	got := WeekWindow(anchor)
	want := []string{
		"2025-12-15", "2025-12-16", "2025-12-17", "2025-12-18",
		"2025-12-19", "2025-12-20", "2025-12-21",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeekWindow = %v, want %v", got, want)
	}
}

func TestWeekWindowSunday(t *testing.T) {
	// Sunday belongs to the week of the preceding Monday
	anchor := time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC)
	got := WeekWindow(anchor)
	if got[0] != "2025-12-15" || got[6] != "2025-12-21" {
		t.Errorf("WeekWindow(Sunday) = %v", got)
	}
}

func TestMonthWindow(t *testing.T) {
	m := timetable.ScheduleMap{
		"2025-12-16": {},
		"2025-12-15": {},
		"2026-01-05": {},
	}
	anchor := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	got := MonthWindow(m, anchor)
	want := []string{"2025-12-15", "2025-12-16"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthWindow = %v, want %v", got, want)
	}
}

func TestStep(t *testing.T) {
	anchor := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	next := Step(ModeWeek, anchor, 1)
	if next.Format("2006-01-02") != "2026-02-07" {
		t.Errorf("week step = %s", next.Format("2006-01-02"))
	}

	// Month steps snap to the 1st so short months cannot be skipped
	next = Step(ModeMonth, anchor, 1)
	if next.Format("2006-01") != "2026-02" {
		t.Errorf("month step from Jan 31 = %s", next.Format("2006-01-02"))
	}
	prev := Step(ModeMonth, anchor, -1)
	if prev.Format("2006-01") != "2025-12" {
		t.Errorf("month step back = %s", prev.Format("2006-01-02"))
	}
}

func TestTitle(t *testing.T) {
	anchor := time.Date(2025, 12, 17, 0, 0, 0, 0, time.UTC)
	if got := Title(ModeMonth, anchor); got != "December 2025" {
		t.Errorf("month title = %q", got)
	}
	if got := Title(ModeWeek, anchor); got != "Dec 15 - Dec 21, 2025" {
		t.Errorf("week title = %q", got)
	}
}
