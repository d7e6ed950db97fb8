package finals

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/schedule"
)

// DefaultURL is the UNR finals schedule page.
const DefaultURL = "https://www.unr.edu/admissions/records/academic-calendar/finals-schedule"

// Client fetches and parses the finals schedule page.
type Client struct {
	httpClient *http.Client

	// SkipCache forces a fresh fetch even when an unexpired cached copy of
	// the parsed tables exists.
	SkipCache bool
}

// NewClient creates a finals page client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// getWithRetries attempts an HTTP GET up to 3 times for transient errors.
// University web servers go down for maintenance windows surprisingly often.
func (c *Client) getWithRetries(url string) (*http.Response, error) {
	var lastErr error
	var resp *http.Response

	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return nil, err
		}
		// The university CDN blocks the default Go user agent.
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

		resp, lastErr = c.httpClient.Do(req)

		if lastErr == nil && (resp.StatusCode == 502 || resp.StatusCode == 503 || resp.StatusCode == 504) {
			resp.Body.Close()
			lastErr = fmt.Errorf("transient status code: %d", resp.StatusCode)
		} else if lastErr == nil {
			return resp, nil
		}

		if attempt < 2 {
			time.Sleep(time.Duration(attempt+1) * time.Second)
		}
	}

	return nil, fmt.Errorf("failed after 3 attempts: %v", lastErr)
}

// FetchTables downloads the finals page and parses its tables, serving an
// unexpired cached copy when one exists.
func (c *Client) FetchTables(url string, vocab schedule.Vocabulary) ([]DayTable, error) {
	if !c.SkipCache {
		if cached, ok := readCache(url); ok {
			return cached, nil
		}
	}

	resp, err := c.getWithRetries(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch finals schedule from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	tables, err := ParseTables(resp.Body, vocab)
	if err != nil {
		return nil, fmt.Errorf("failed to parse finals schedule: %w", err)
	}

	writeCache(url, tables)
	return tables, nil
}
