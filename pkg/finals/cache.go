package finals

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long parsed tables are kept before refetching.
// The finals page changes once a semester; 12 hours is plenty fresh.
const cacheDuration = 12 * time.Hour

// CacheEntry is the on-disk format for a cached finals page.
type CacheEntry struct {
	Timestamp time.Time  `json:"timestamp"`
	Tables    []DayTable `json:"tables"`
}

func getCachePath(url string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".finalsgen_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// Hash the URL into a filesystem-safe name so overridden URLs get their
	// own cache files.
	h := fnv.New32a()
	h.Write([]byte(url))
	return filepath.Join(cacheDir, fmt.Sprintf("finals_%08x.json", h.Sum32())), nil
}

// readCache returns the cached tables for this URL if a valid, unexpired
// cache exists.
func readCache(url string) ([]DayTable, bool) {
	path, err := getCachePath(url)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Tables, true
}

// writeCache saves the parsed tables to disk. Failures are ignored; the
// cache is an optimization, not a requirement.
func writeCache(url string, tables []DayTable) {
	path, err := getCachePath(url)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Tables:    tables,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
