package timetable

import (
	"errors"
	"testing"
)

func TestAssembleRoundTrip(t *testing.T) {
	slots := DefaultSlots()
	rows := []Row{
		{"2025-12-15", "Room A", "", "", "BFSI A 1", "", "", "", "", "", "", ""},
	}

	schedule, err := Assemble(rows, slots, []string{"BFSI A"}, Options{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	day, ok := schedule["2025-12-15"]
	if !ok {
		t.Fatalf("expected a schedule entry for 2025-12-15, got %v", schedule)
	}

	events := day[4]
	if len(events) != 1 {
		t.Fatalf("expected one event in slot 4, got %d", len(events))
	}
	evt := events[0]
	if evt.Text != "BFSI A 1" {
		t.Errorf("event text = %q, want %q", evt.Text, "BFSI A 1")
	}
	if evt.Room != "Room A" {
		t.Errorf("event room = %q, want %q", evt.Room, "Room A")
	}
	if evt.Kind != KindClass {
		t.Errorf("event kind = %v, want class", evt.Kind)
	}
}

func TestAssembleEmptySelection(t *testing.T) {
	rows := []Row{{"2025-12-15", "Room A", "", "BFSI A 1"}}

	_, err := Assemble(rows, DefaultSlots(), nil, Options{})
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestAssembleFillDown(t *testing.T) {
	slots := DefaultSlots()
	// Only the first row carries a date; the rest span the merged cell
	rows := []Row{
		{"12/15/2025", "Room A", "", "BFSI A 1"},
		{"", "Room B", "", "", "BFSI A 1"},
		{"", "Room C", "", "", "", "BFSI A 1"},
	}

	schedule, err := Assemble(rows, slots, []string{"BFSI A"}, Options{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(schedule) != 1 {
		t.Fatalf("expected all rows attributed to one date, got %d dates", len(schedule))
	}
	day := schedule["2025-12-15"]
	for _, idx := range []int{3, 4, 5} {
		if len(day[idx]) != 1 {
			t.Errorf("expected an event in slot %d, got %v", idx, day[idx])
		}
	}
	if day[4][0].Room != "Room B" {
		t.Errorf("inherited row should keep its own room, got %q", day[4][0].Room)
	}
}

func TestAssembleQuizLinkage(t *testing.T) {
	slots := DefaultSlots()
	rows := []Row{
		{"2025-12-15", "Room A", "", "Quiz-BFSI", "Quiz-BFSIX"},
	}

	schedule, err := Assemble(rows, slots, []string{"BFSI A"}, Options{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	day := schedule["2025-12-15"]
	if len(day[3]) != 1 {
		t.Fatalf("Quiz-BFSI should match selection BFSI A, got %v", day[3])
	}
	if day[3][0].Kind != KindQuiz {
		t.Errorf("matched quiz has kind %v", day[3][0].Kind)
	}
	if len(day[4]) != 0 {
		t.Errorf("Quiz-BFSIX must not match selection BFSI A, got %v", day[4])
	}
}

func TestAssembleAssessmentRoomPolicy(t *testing.T) {
	slots := DefaultSlots()
	rows := []Row{
		{"2025-12-15", "Room A", "", "Quiz-BFSI", "BFSI A 1"},
	}

	schedule, err := Assemble(rows, slots, []string{"BFSI A"}, Options{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	day := schedule["2025-12-15"]
	if day[3][0].Room != "" {
		t.Errorf("quiz room should be blanked by default, got %q", day[3][0].Room)
	}
	if day[4][0].Room != "Room A" {
		t.Errorf("class room should be kept, got %q", day[4][0].Room)
	}

	schedule, err = Assemble(rows, slots, []string{"BFSI A"}, Options{ShowAssessmentRooms: true})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if schedule["2025-12-15"][3][0].Room != "Room A" {
		t.Errorf("quiz room should be kept when the policy allows it")
	}
}

func TestAssembleCollisionsAppend(t *testing.T) {
	slots := DefaultSlots()
	// Two rows for the same date put parallel sections into the same slot
	rows := []Row{
		{"2025-12-15", "Room A", "", "BFSI A 1"},
		{"", "Room B", "", "IBS A 1"},
	}

	schedule, err := Assemble(rows, slots, []string{"BFSI A", "IBS A"}, Options{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	events := schedule["2025-12-15"][3]
	if len(events) != 2 {
		t.Fatalf("expected both colliding events kept, got %d", len(events))
	}
	// Insertion order is row order
	if events[0].Text != "BFSI A 1" || events[1].Text != "IBS A 1" {
		t.Errorf("collision order wrong: %v", events)
	}
}

func TestAssembleFreeDayEntry(t *testing.T) {
	slots := DefaultSlots()
	rows := []Row{
		{"2025-12-15", "Room A", "", "BFSI A 1"},
		{"2025-12-16", "Room A", "", "OTHER B 1"}, // dated, but nothing matches
	}

	schedule, err := Assemble(rows, slots, []string{"BFSI A"}, Options{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	day, ok := schedule["2025-12-16"]
	if !ok {
		t.Fatal("a dated row with no matches must still produce a map entry")
	}
	if len(day) != 0 {
		t.Errorf("free day should have no slot entries, got %v", day)
	}
	if _, ok := schedule["2025-12-17"]; ok {
		t.Error("a date never seen must not appear in the map")
	}
}

func TestAssembleFreshState(t *testing.T) {
	slots := DefaultSlots()
	// A dateless leading row must not inherit state from a previous call
	first := []Row{{"2025-12-15", "Room A", "", "BFSI A 1"}}
	second := []Row{{"", "Room B", "", "BFSI A 1"}}

	if _, err := Assemble(first, slots, []string{"BFSI A"}, Options{}); err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	schedule, err := Assemble(second, slots, []string{"BFSI A"}, Options{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(schedule) != 0 {
		t.Errorf("fill-down state leaked across assembly passes: %v", schedule)
	}
}
