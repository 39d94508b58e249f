// internal/common/search/client.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"trip-planner/internal/common/errors"
	"trip-planner/internal/common/httpclient"
)

// ErrSearchTimeout marks a lookup that ran out of time; callers resolve it
// with fallback data rather than retrying.
var ErrSearchTimeout = errors.NewSearchTimeoutError()

// Result is one hit from the external text search.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Searcher is the external data source contract the lookups consume.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

type Config struct {
	BaseURL  string
	APIKey   string
	EngineID string
	Timeout  time.Duration
}

// Client queries a keyword search API returning {title, snippet, url} tuples.
type Client struct {
	config *Config
	client *httpclient.Client
}

func NewClient(config *Config) *Client {
	return &Client{
		config: config,
		client: httpclient.NewClient(config.Timeout),
	}
}

func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.buildSearchURL(query, maxResults), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded ||
			strings.Contains(err.Error(), "timeout") ||
			strings.Contains(err.Error(), "deadline") ||
			strings.Contains(err.Error(), "Client.Timeout") {
			return nil, ErrSearchTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned %d", resp.StatusCode)
	}

	var apiResponse struct {
		Items []struct {
			Link    string `json:"link"`
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"items"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(apiResponse.Items))
	for _, item := range apiResponse.Items {
		results = append(results, Result{
			Title:   item.Title,
			Snippet: truncate(item.Snippet, 200),
			URL:     item.Link,
		})
		if len(results) >= maxResults {
			break
		}
	}

	return results, nil
}

func (c *Client) buildSearchURL(query string, maxResults int) string {
	baseURL, _ := url.Parse(c.config.BaseURL)
	params := url.Values{}
	params.Add("key", c.config.APIKey)
	params.Add("cx", c.config.EngineID)
	params.Add("q", query)
	params.Add("num", fmt.Sprintf("%d", maxResults))
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
