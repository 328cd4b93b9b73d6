package exporter

import (
	"io"
	"strings"

	"slotwise/pkg/timetable"
)

// WriteGridCSV emits the simple grid format: one column per slot label, one
// row per date known to the schedule. A dated day with no events gets a
// full "FREE" row so the output is a complete calendar rather than only the
// filled days. Slots with several events join them with " | ".
func WriteGridCSV(m timetable.ScheduleMap, slots []timetable.Slot, w io.Writer) error {
	header := make([]string, 0, len(slots)+1)
	header = append(header, "Date")
	for _, slot := range slots {
		header = append(header, quote(slot.Label))
	}
	if _, err := io.WriteString(w, strings.Join(header, ",")+"\r\n"); err != nil {
		return err
	}

	for _, date := range m.Dates() {
		day := m[date]
		fields := make([]string, 0, len(slots)+1)
		fields = append(fields, date)

		if len(day) == 0 {
			for range slots {
				fields = append(fields, `"FREE"`)
			}
		} else {
			for _, slot := range slots {
				events := day[slot.Index]
				if len(events) == 0 {
					fields = append(fields, "")
					continue
				}
				parts := make([]string, 0, len(events))
				for _, evt := range events {
					if evt.Room != "" {
						parts = append(parts, evt.Text+" ("+evt.Room+")")
					} else {
						parts = append(parts, evt.Text)
					}
				}
				fields = append(fields, quote(strings.Join(parts, " | ")))
			}
		}

		if _, err := io.WriteString(w, strings.Join(fields, ",")+"\r\n"); err != nil {
			return err
		}
	}
	return nil
}
