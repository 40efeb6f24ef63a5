package yourls

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ShortenResult is the decoded outcome of a successful shorturl action.
type ShortenResult struct {
	ShortURL string `json:"shorturl"`
	URL      string `json:"url"`
	Title    string `json:"title"`
}

// ExpandResult is the decoded outcome of a successful expand action.
type ExpandResult struct {
	ShortURL string `json:"shorturl"`
	LongURL  string `json:"longurl"`
	Title    string `json:"title"`
}

// URLStatsResult is the decoded outcome of a successful url-stats action.
type URLStatsResult struct {
	ShortURL string `json:"shorturl"`
	Clicks   int    `json:"clicks"`
	Title    string `json:"title"`
	LongURL  string `json:"longurl"`
}

// DBStatsResult is the decoded outcome of a successful db-stats action.
type DBStatsResult struct {
	TotalLinks  int `json:"total_links"`
	TotalClicks int `json:"total_clicks"`
}

// Shorten creates a short link for longURL. Keyword and title are optional
// and omitted from the request when empty.
func (c *Client) Shorten(ctx context.Context, longURL, keyword, title string) (*ShortenResult, error) {
	params := url.Values{}
	params.Set("url", longURL)
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	if title != "" {
		params.Set("title", title)
	}
	resp, err := c.call(ctx, "shorturl", params)
	if err != nil {
		return nil, err
	}
	if _, ok := resp["shorturl"]; !ok {
		return nil, apiError(resp)
	}
	return &ShortenResult{
		ShortURL: stringField(resp, "shorturl", ""),
		URL:      stringField(resp, "url", longURL),
		Title:    stringField(resp, "title", title),
	}, nil
}

// Expand resolves a short URL or keyword back to its long URL.
func (c *Client) Expand(ctx context.Context, shortURL string) (*ExpandResult, error) {
	params := url.Values{}
	params.Set("shorturl", shortURL)
	resp, err := c.call(ctx, "expand", params)
	if err != nil {
		return nil, err
	}
	if _, ok := resp["longurl"]; !ok {
		return nil, apiError(resp)
	}
	return &ExpandResult{
		ShortURL: stringField(resp, "shorturl", shortURL),
		LongURL:  stringField(resp, "longurl", ""),
		Title:    stringField(resp, "title", ""),
	}, nil
}

// URLStats returns click statistics for one short URL. Success is indicated
// by the link key; the remaining fields are read from the response top level.
func (c *Client) URLStats(ctx context.Context, shortURL string) (*URLStatsResult, error) {
	params := url.Values{}
	params.Set("shorturl", shortURL)
	resp, err := c.call(ctx, "url-stats", params)
	if err != nil {
		return nil, err
	}
	if _, ok := resp["link"]; !ok {
		return nil, apiError(resp)
	}
	return &URLStatsResult{
		ShortURL: stringField(resp, "shorturl", shortURL),
		Clicks:   intField(resp, "clicks", 0),
		Title:    stringField(resp, "title", ""),
		LongURL:  stringField(resp, "url", ""),
	}, nil
}

// DBStats returns instance-wide link and click totals.
func (c *Client) DBStats(ctx context.Context) (*DBStatsResult, error) {
	resp, err := c.call(ctx, "db-stats", url.Values{})
	if err != nil {
		return nil, err
	}
	stats, ok := resp["db-stats"].(map[string]interface{})
	if !ok {
		return nil, apiError(resp)
	}
	return &DBStatsResult{
		TotalLinks:  intField(stats, "total_links", 0),
		TotalClicks: intField(stats, "total_clicks", 0),
	}, nil
}

// apiError converts a success-key-less response into an APIError, falling
// back to the documented defaults when the backend omits message or code.
func apiError(resp map[string]interface{}) *APIError {
	return &APIError{
		Message: stringField(resp, "message", "Unknown error"),
		Code:    stringField(resp, "code", "unknown"),
	}
}

func stringField(m map[string]interface{}, key, fallback string) string {
	value, ok := m[key]
	if !ok || value == nil {
		return fallback
	}
	switch actual := value.(type) {
	case string:
		return actual
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", actual)
	}
}

// intField tolerates both numeric and string-encoded counters – YOURLS
// returns clicks and totals as strings in several versions.
func intField(m map[string]interface{}, key string, fallback int) int {
	value, ok := m[key]
	if !ok || value == nil {
		return fallback
	}
	switch actual := value.(type) {
	case float64:
		return int(actual)
	case int:
		return actual
	case string:
		if parsed, err := strconv.Atoi(actual); err == nil {
			return parsed
		}
	}
	return fallback
}
