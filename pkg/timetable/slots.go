package timetable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Slot is one fixed teaching period: a source column index plus its
// time-of-day window. The slot layout is configuration, never derived
// from the data.
type Slot struct {
	Index int    `yaml:"index"`
	Label string `yaml:"label"`
	Start string `yaml:"start"` // "09:00 AM"
	End   string `yaml:"end"`   // "10:15 AM"
}

// DefaultSlots returns the built-in slot layout used by the institute's
// spreadsheet export: columns 3-12, with column 6 being the short lunch-hour
// period that quizzes occupy.
func DefaultSlots() []Slot {
	return []Slot{
		{Index: 3, Label: "09:00 - 10:15", Start: "09:00 AM", End: "10:15 AM"},
		{Index: 4, Label: "10:30 - 11:45", Start: "10:30 AM", End: "11:45 AM"},
		{Index: 5, Label: "12:00 - 01:15", Start: "12:00 PM", End: "01:15 PM"},
		{Index: 6, Label: "01:30 - 02:15", Start: "01:30 PM", End: "02:15 PM"},
		{Index: 7, Label: "02:30 - 03:45", Start: "02:30 PM", End: "03:45 PM"},
		{Index: 8, Label: "04:00 - 05:15", Start: "04:00 PM", End: "05:15 PM"},
		{Index: 9, Label: "05:30 - 06:45", Start: "05:30 PM", End: "06:45 PM"},
		{Index: 10, Label: "07:00 - 08:15", Start: "07:00 PM", End: "08:15 PM"},
		{Index: 11, Label: "08:45 - 10:00", Start: "08:45 PM", End: "10:00 PM"},
		{Index: 12, Label: "10:15 - 11:30", Start: "10:15 PM", End: "11:30 PM"},
	}
}

// LoadSlots reads a YAML slot layout override. The file holds a list of
// slot entries; indices must be strictly increasing so each column maps to
// exactly one time window.
func LoadSlots(path string) ([]Slot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slot layout file: %w", err)
	}

	var slots []Slot
	if err := yaml.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("failed to parse slot layout YAML: %w", err)
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("slot layout file %s defines no slots", path)
	}

	for i, s := range slots {
		if s.Label == "" {
			return nil, fmt.Errorf("slot %d has no label", i)
		}
		if i > 0 && slots[i-1].Index >= s.Index {
			return nil, fmt.Errorf("slot indices must be strictly increasing (index %d after %d)", s.Index, slots[i-1].Index)
		}
	}

	return slots, nil
}

// SlotByIndex looks up a slot by its column index.
func SlotByIndex(slots []Slot, index int) (Slot, bool) {
	for _, s := range slots {
		if s.Index == index {
			return s, true
		}
	}
	return Slot{}, false
}
