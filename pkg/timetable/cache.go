package timetable

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// remoteCacheDuration determines how long a downloaded timetable is kept
// before refetching. Local files are invalidated by modtime instead.
const remoteCacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format for parsed rows.
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	ModTime   time.Time `json:"mod_time,omitempty"`
	Rows      []Row     `json:"rows"`
}

func getCachePath(source string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".slotwise_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// Hash the full source so paths and URLs both map to safe file names
	sum := sha256.Sum256([]byte(source))
	return filepath.Join(cacheDir, fmt.Sprintf("%x.json", sum[:8])), nil
}

func loadEntry(source string) (*CacheEntry, bool) {
	path, err := getCachePath(source)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	return &entry, true
}

func storeEntry(source string, entry CacheEntry) {
	path, err := getCachePath(source)
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}

// readCache returns cached rows for a local file if the file has not been
// modified since they were written.
func readCache(path string, modTime time.Time) ([]Row, bool) {
	entry, ok := loadEntry(path)
	if !ok || !entry.ModTime.Equal(modTime) {
		return nil, false
	}
	return entry.Rows, true
}

func writeCache(path string, modTime time.Time, rows []Row) {
	storeEntry(path, CacheEntry{
		Timestamp: time.Now(),
		ModTime:   modTime,
		Rows:      rows,
	})
}

// readRemoteCache returns cached rows for a URL if they are still fresh.
func readRemoteCache(source string) ([]Row, bool) {
	entry, ok := loadEntry(source)
	if !ok {
		return nil, false
	}
	if time.Since(entry.Timestamp) > remoteCacheDuration {
		return nil, false // Expired
	}
	return entry.Rows, true
}

func writeRemoteCache(source string, rows []Row) {
	storeEntry(source, CacheEntry{
		Timestamp: time.Now(),
		Rows:      rows,
	})
}
