// Package datagov fetches crop production records from the data.gov.in
// open data API.
package datagov

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public data.gov.in API endpoint.
const DefaultBaseURL = "https://api.data.gov.in"

// DefaultPageSize is the number of records requested per page.
const DefaultPageSize = 5000

// RawRecord is one record as returned by the API. Field names vary between
// resources ("state_name" vs "state", "crop_year" vs "year"), so records
// stay untyped until the ETL normalization step.
type RawRecord map[string]any

// Client is the HTTP client for the data.gov.in resource API.
type Client struct {
	apiKey     string
	resourceID string
	baseURL    string
	pageSize   int
	httpClient *http.Client
	debug      bool
}

// NewClient creates a client for the given resource using the public API endpoint.
func NewClient(apiKey, resourceID string, debug bool) *Client {
	return NewClientWithURL(apiKey, resourceID, DefaultBaseURL, debug)
}

// NewClientWithURL creates a client with a specific base URL.
func NewClientWithURL(apiKey, resourceID, baseURL string, debug bool) *Client {
	return &Client{
		apiKey:     apiKey,
		resourceID: resourceID,
		baseURL:    baseURL,
		pageSize:   DefaultPageSize,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		debug: debug,
	}
}

// SetPageSize overrides the per-request record limit.
func (c *Client) SetPageSize(n int) {
	if n > 0 {
		c.pageSize = n
	}
}

type resourceResponse struct {
	Records []RawRecord `json:"records"`
}

// FetchAll pages through the resource with limit/offset until a short or
// empty page and returns every record.
func (c *Client) FetchAll(ctx context.Context) ([]RawRecord, error) {
	var all []RawRecord
	offset := 0

	for {
		batch, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		all = append(all, batch...)
		if c.debug {
			fmt.Printf("[datagov] fetched %d records (total %d)\n", len(batch), len(all))
		}

		if len(batch) < c.pageSize {
			break
		}
		offset += c.pageSize
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, offset int) ([]RawRecord, error) {
	q := url.Values{}
	q.Set("api-key", c.apiKey)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(c.pageSize))
	q.Set("offset", strconv.Itoa(offset))
	reqURL := fmt.Sprintf("%s/resource/%s?%s", c.baseURL, c.resourceID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("unauthorized: check the data.gov.in API key")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var parsed resourceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return parsed.Records, nil
}
