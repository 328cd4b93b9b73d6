package timetable

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches remote timetable files for institutes that publish the
// export at a fixed URL.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new fetch client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch downloads the given URL and returns the response body. The caller
// owns closing it.
func (c *Client) Fetch(url string) (io.ReadCloser, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "slotwise/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}
