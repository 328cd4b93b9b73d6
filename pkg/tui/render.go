package tui

import (
	"fmt"
	"strings"
	"time"

	"slotwise/pkg/timetable"
	"slotwise/pkg/view"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	todayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205")).Padding(0, 1)
	dateStyle    = lipgloss.NewStyle().Bold(true)
	freeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Italic(true)
	classStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	quizStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	examStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	holidayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
)

// RenderWindow lays out one week or month of the schedule as styled text:
// a heading per day, free-day markers, and one line per merged slot run
// showing the run's combined time range.
func RenderWindow(m timetable.ScheduleMap, slots []timetable.Slot, mode view.Mode, anchor time.Time) string {
	dates := view.Window(m, mode, anchor)
	rows := view.Project(m, dates, slots)
	today := time.Now().Format("2006-01-02")

	var b strings.Builder
	b.WriteString(titleStyle.Render("  "+view.Title(mode, anchor)) + "\n\n")

	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("  No classes scheduled for this period.") + "\n")
		return b.String()
	}

	for _, row := range rows {
		b.WriteString(renderDay(row, slots, row.Date == today))
	}
	return b.String()
}

func renderDay(row view.DayRow, slots []timetable.Slot, isToday bool) string {
	var b strings.Builder

	heading := row.Date
	if t, err := time.Parse("2006-01-02", row.Date); err == nil {
		heading = t.Format("Mon, Jan 2")
	}
	if isToday {
		b.WriteString(todayStyle.Render(heading+" · Today") + "\n")
	} else {
		b.WriteString(dateStyle.Render(heading) + "\n")
	}

	switch {
	case row.Free:
		b.WriteString(freeStyle.Render("  ✨ Free Day ✨") + "\n")
	case !row.Known:
		b.WriteString(dimStyle.Render("  —") + "\n")
	default:
		for _, cell := range row.Cells {
			if len(cell.Events) == 0 {
				continue
			}
			window := runWindow(slots, cell.Start, cell.Span)
			for i, evt := range cell.Events {
				label := window
				if i > 0 {
					label = strings.Repeat(" ", len(window)) // collision in the same slot
				}
				b.WriteString(fmt.Sprintf("  %s  %s", dimStyle.Render(label), kindStyle(evt.Kind).Render(evt.Text)))
				if evt.Room != "" {
					b.WriteString(dimStyle.Render("  📍 " + evt.Room))
				}
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	return b.String()
}

// runWindow builds the time label for a merged run, from the first covered
// slot's start to the last covered slot's end.
func runWindow(slots []timetable.Slot, start, span int) string {
	first := slots[start]
	last := slots[start+span-1]
	from := strings.SplitN(first.Label, " - ", 2)[0]
	parts := strings.SplitN(last.Label, " - ", 2)
	to := parts[len(parts)-1]
	return from + " - " + to
}

func kindStyle(k timetable.EventKind) lipgloss.Style {
	switch k {
	case timetable.KindQuiz:
		return quizStyle
	case timetable.KindExam:
		return examStyle
	case timetable.KindHoliday:
		return holidayStyle
	default:
		return classStyle
	}
}
