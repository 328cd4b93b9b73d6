package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slotwise/pkg/config"
)

func sessionTestHome(t *testing.T) string {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "slotwise-session-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
	return tempDir
}

func TestLoadSessionRequiresSource(t *testing.T) {
	sessionTestHome(t)

	// No flag and no configured default: fail before anything loads
	_, err := LoadSession("")
	if err == nil {
		t.Fatal("expected an error when no source is given")
	}
	if !strings.Contains(err.Error(), "no timetable source") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadSessionRejectsBadSlotLayout(t *testing.T) {
	tempDir := sessionTestHome(t)

	csvPath := filepath.Join(tempDir, "timetable.csv")
	if err := os.WriteFile(csvPath, []byte("12/15/2025,Room A,,BFSI A 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test csv: %v", err)
	}

	cfg := &config.AppConfig{SlotLayoutPath: filepath.Join(tempDir, "missing.yaml")}
	if err := config.Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := LoadSession(csvPath); err == nil {
		t.Fatal("expected an error for an unreadable slot layout")
	}
}
