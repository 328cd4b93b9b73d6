package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppConfig holds all user-defined persistent settings. SelectedCourses is
// the durable piece of state the tool keeps between runs: the student's
// last confirmed course selection.
type AppConfig struct {
	SelectedCourses     []string `json:"selected_courses,omitempty"`
	DefaultSource       string   `json:"default_source,omitempty"`
	SlotLayoutPath      string   `json:"slot_layout_path,omitempty"`
	Timezone            string   `json:"timezone,omitempty"`
	ShowAssessmentRooms bool     `json:"show_assessment_rooms,omitempty"`
	AccentColor         string   `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.slotwise.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".slotwise.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ClearSelection drops the stored course selection and persists the change.
func ClearSelection() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.SelectedCourses = nil
	return Save(cfg)
}
