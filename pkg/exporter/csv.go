// Package exporter writes an assembled schedule out in calendar-importable
// forms: a flat Google-Calendar-style CSV, a per-date grid CSV, and an ICS
// feed.
package exporter

import (
	"io"
	"strings"

	"slotwise/pkg/timetable"
)

// WriteCalendarCSV emits the flat calendar-import format: one row per
// matched event with the slot's configured time window. Commas inside
// fields are replaced with spaces, fields are quote-wrapped, and lines end
// with CRLF, matching what calendar importers expect.
func WriteCalendarCSV(m timetable.ScheduleMap, slots []timetable.Slot, w io.Writer) error {
	if _, err := io.WriteString(w, "Subject,Start Date,Start Time,End Date,End Time,Location,Description\r\n"); err != nil {
		return err
	}

	for _, date := range m.Dates() {
		day := m[date]
		for _, slot := range slots {
			for _, evt := range day[slot.Index] {
				fields := []string{
					quote(evt.Text),
					date,
					quote(slot.Start),
					date,
					quote(slot.End),
					quote(evt.Room),
					quote(evt.Kind.Description()),
				}
				if _, err := io.WriteString(w, strings.Join(fields, ",")+"\r\n"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, ",", " ") + `"`
}
