package exporter

import (
	"bytes"
	"strings"
	"testing"

	"slotwise/pkg/timetable"
)

func TestWriteCalendarCSV(t *testing.T) {
	m := timetable.ScheduleMap{
		"2025-12-15": {
			4: {{Text: "BFSI A 1", Room: "Room A", Kind: timetable.KindClass}},
		},
		"2025-12-16": {
			3: {{Text: "Quiz-BFSI", Room: "", Kind: timetable.KindQuiz}},
		},
	}

	var buf bytes.Buffer
	if err := WriteCalendarCSV(m, timetable.DefaultSlots(), &buf); err != nil {
		t.Fatalf("WriteCalendarCSV failed: %v", err)
	}
	output := buf.String()

	lines := strings.Split(output, "\r\n")
	if lines[0] != "Subject,Start Date,Start Time,End Date,End Time,Location,Description" {
		t.Errorf("unexpected header: %q", lines[0])
	}

	want := `"BFSI A 1",2025-12-15,"10:30 AM",2025-12-15,"11:45 AM","Room A","Class Session"`
	if lines[1] != want {
		t.Errorf("event row = %q, want %q", lines[1], want)
	}

	if !strings.Contains(output, `"Quiz-BFSI",2025-12-16,"09:00 AM",2025-12-16,"10:15 AM","","Quiz / Assessment"`) {
		t.Errorf("quiz row missing or wrong:\n%s", output)
	}

	// CRLF endings throughout
	if strings.Contains(strings.ReplaceAll(output, "\r\n", ""), "\n") {
		t.Error("expected CRLF line endings only")
	}
}

func TestWriteCalendarCSVReplacesCommas(t *testing.T) {
	m := timetable.ScheduleMap{
		"2025-12-15": {
			3: {{Text: "BFSI, Advanced", Room: "Block A, Room 2", Kind: timetable.KindClass}},
		},
	}

	var buf bytes.Buffer
	if err := WriteCalendarCSV(m, timetable.DefaultSlots(), &buf); err != nil {
		t.Fatalf("WriteCalendarCSV failed: %v", err)
	}

	if !strings.Contains(buf.String(), `"BFSI  Advanced"`) {
		t.Errorf("commas in subject should become spaces:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"Block A  Room 2"`) {
		t.Errorf("commas in location should become spaces:\n%s", buf.String())
	}
}

func TestWriteCalendarCSVSortsDates(t *testing.T) {
	m := timetable.ScheduleMap{
		"2025-12-16": {3: {{Text: "B", Kind: timetable.KindClass}}},
		"2025-12-15": {3: {{Text: "A", Kind: timetable.KindClass}}},
	}

	var buf bytes.Buffer
	if err := WriteCalendarCSV(m, timetable.DefaultSlots(), &buf); err != nil {
		t.Fatalf("WriteCalendarCSV failed: %v", err)
	}

	first := strings.Index(buf.String(), "2025-12-15")
	second := strings.Index(buf.String(), "2025-12-16")
	if first == -1 || second == -1 || first > second {
		t.Errorf("dates not emitted in sorted order:\n%s", buf.String())
	}
}
