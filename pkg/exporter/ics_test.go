package exporter

import (
	"bytes"
	"strings"
	"testing"

	"slotwise/pkg/timetable"
)

func TestGenerateICS(t *testing.T) {
	m := timetable.ScheduleMap{
		"2025-12-15": {
			3: {{Text: "BFSI A 1", Room: "Room A", Kind: timetable.KindClass}},
		},
	}

	var buf bytes.Buffer
	err := GenerateICS(m, timetable.DefaultSlots(), "Asia/Kolkata", &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:BFSI A 1") {
		t.Errorf("Expected ICS to contain event summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:Room A") {
		t.Errorf("Expected ICS to contain room location")
	}

	// 15-Dec-2025 09:00 Kolkata time is 03:30 UTC.
	if !strings.Contains(output, "DTSTART:20251215T033000Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}

	if !strings.Contains(output, "DESCRIPTION:Class Session") {
		t.Errorf("Expected kind description in ICS")
	}
}

func TestGenerateICSUnknownTimezone(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateICS(timetable.ScheduleMap{}, timetable.DefaultSlots(), "Nowhere/Atlantis", &buf)
	if err == nil {
		t.Fatal("expected an error for an unknown timezone")
	}
}
