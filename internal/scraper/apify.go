package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultApifyURL = "https://api.apify.com"

// Actor IDs used by the scraping service.
const (
	actorTweetScraper = "apidojo/tweet-scraper"
	actorGoogleSearch = "apify/google-search-scraper"
	actorGoogleTrends = "emastra/google-trends-scraper"
)

// actorRunner runs an Apify actor synchronously and returns its dataset
// items. Split out as an interface so the service can be tested with a
// fake runner.
type actorRunner interface {
	RunActor(ctx context.Context, actorID string, input any) ([]map[string]any, error)
}

// ApifyClient wraps the Apify run-sync API.
type ApifyClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewApifyClient creates a client for the Apify platform API.
func NewApifyClient(baseURL, token string) *ApifyClient {
	if baseURL == "" {
		baseURL = defaultApifyURL
	}
	return &ApifyClient{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// RunActor starts the actor with the given input and waits for its dataset.
// Actor IDs use the "user/name" form; the API path wants "user~name".
func (c *ApifyClient) RunActor(ctx context.Context, actorID string, input any) ([]map[string]any, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshaling actor input: %w", err)
	}

	path := fmt.Sprintf("/v2/acts/%s/run-sync-get-dataset-items", strings.ReplaceAll(actorID, "/", "~"))
	endpoint := c.baseURL + path + "?token=" + url.QueryEscape(c.token)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("apify returned status %d: %s", resp.StatusCode, truncate(string(bodyBytes), 200))
	}

	var items []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding dataset items: %w", err)
	}

	return items, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
