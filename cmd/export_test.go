package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportRejectsUnknownFormatBeforeWriting(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "slotwise-export-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	output := filepath.Join(tempDir, "out.csv")

	rootCmd.SetArgs([]string{"export", "--format", "bogus", "-o", output})
	defer rootCmd.SetArgs(nil)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	err = rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("unexpected error: %v", err)
	}

	// The bad format must be rejected before the output file is created
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("a rejected export should not leave a file at %s", output)
	}
}
