package exporter

import (
	"fmt"
	"io"
	"time"

	"slotwise/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// DefaultTimezone places exported events on the institute's clock.
const DefaultTimezone = "Asia/Kolkata"

// GenerateICS creates an ICS feed from the assembled schedule and writes it
// to the provided writer. Slot time windows are interpreted in the given
// IANA timezone (DefaultTimezone when empty).
func GenerateICS(m timetable.ScheduleMap, slots []timetable.Slot, timezone string, w io.Writer) error {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	i := 0
	for _, date := range m.Dates() {
		day := m[date]
		for _, slot := range slots {
			for _, evt := range day[slot.Index] {
				startTime, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+slot.Start, loc)
				if err != nil {
					continue // Skip slots with malformed time windows
				}
				endTime, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+slot.End, loc)
				if err != nil {
					continue
				}

				event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), i))
				i++
				event.SetCreatedTime(time.Now())
				event.SetDtStampTime(time.Now())
				event.SetModifiedAt(time.Now())
				event.SetStartAt(startTime)
				event.SetEndAt(endTime)
				event.SetSummary(evt.Text)
				event.SetLocation(evt.Room)
				event.SetDescription(evt.Kind.Description())
			}
		}
	}

	return cal.SerializeTo(w)
}
