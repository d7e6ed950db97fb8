package finals

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"
	"time"
)

func TestCacheReadWrite(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "finalsgen-cache-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	url := "https://example.edu/finals-schedule"

	// 1. Read non-existent cache
	tables, ok := readCache(url)
	if ok || tables != nil {
		t.Errorf("expected readCache to fail for non-existent cache, but got success")
	}

	// 2. Write cache
	testTables := []DayTable{
		{
			Day: "Wednesday",
			Slots: []Slot{
				{ClassTime: "10:00 a.m.", DayPattern: "MWF", FinalTime: "10:15 a.m. - 12:15 p.m."},
			},
		},
	}
	writeCache(url, testTables)

	// Verify the cache file was created
	path, err := getCachePath(url)
	if err != nil {
		t.Fatalf("getCachePath failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected cache file to be created at %s", path)
	}

	// 3. Read existing valid cache
	loaded, ok := readCache(url)
	if !ok {
		t.Fatalf("expected readCache to succeed for existing cache, but failed")
	}
	if !reflect.DeepEqual(testTables, loaded) {
		t.Errorf("loaded tables do not match written tables.\nGot: %+v\nExpected: %+v", loaded, testTables)
	}

	// 4. A different URL gets its own cache file
	if _, ok := readCache("https://example.edu/other-page"); ok {
		t.Errorf("expected a different URL to miss the cache")
	}
}

func TestCacheExpiration(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "finalsgen-cache-exp-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	url := "https://example.edu/finals-schedule"
	writeCache(url, []DayTable{})

	// Manually age the timestamp past the 12h limit
	path, _ := getCachePath(url)
	entry := CacheEntry{
		Timestamp: time.Now().Add(-24 * time.Hour),
		Tables:    []DayTable{{Day: "Old"}},
	}
	data, _ := json.Marshal(entry)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to overwrite cache file: %v", err)
	}

	if _, ok := readCache(url); ok {
		t.Errorf("expected readCache to reject an expired cache (24h old, limit is 12h), but it succeeded")
	}
}
