// internal/country/client.go
//
// HTTP client for the public country-data endpoint.
// Responsibilities:
//   - Issue a single GET (no retries, no backoff) against the configured URL.
//   - Decode the JSON body into validated Country values.
//   - Reject responses that leave fewer than two playable countries.

package country

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultURL lists every independent country with its population.
const DefaultURL = "https://restcountries.com/v3.1/independent?status=true&fields=name,population"

// Client fetches country data over HTTP.
type Client struct {
	http *http.Client
	url  string
}

// NewClient constructs a Client for the given endpoint.
// An empty url falls back to DefaultURL.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		http: &http.Client{Timeout: 15 * time.Second},
		url:  url,
	}
}

// Fetch performs one GET and returns the validated country list.
// A response that decodes to fewer than two usable countries is an error:
// the game cannot select a pair from it.
func (c *Client) Fetch(ctx context.Context) ([]Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch countries: unexpected status %s", resp.Status)
	}

	var raw []record
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}

	countries := normalize(raw)
	if len(countries) < 2 {
		return nil, fmt.Errorf("fetch countries: %d usable entries, need at least 2", len(countries))
	}
	return countries, nil
}
