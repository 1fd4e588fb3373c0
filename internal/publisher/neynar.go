// Package publisher posts finished content to Farcaster through the Neynar
// API. The rest of the system treats publishing as an opaque action with a
// hash on success and an error on failure.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

const defaultNeynarURL = "https://api.neynar.com"

// maxCastLength is the Farcaster protocol limit, enforced before the call
// so an over-long cast never burns a request.
const maxCastLength = 320

// Client wraps the Neynar cast API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Neynar client. Pass "" for baseURL to use production.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultNeynarURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type castRequest struct {
	SignerUUID string `json:"signer_uuid"`
	Text       string `json:"text"`
}

type castResponse struct {
	Cast struct {
		Hash string `json:"hash"`
	} `json:"cast"`
	Message string `json:"message,omitempty"`
}

// PublishCast posts text through a managed signer and returns the cast
// hash.
func (c *Client) PublishCast(ctx context.Context, signerUUID, text string) (string, error) {
	if length := utf8.RuneCountInString(text); length > maxCastLength {
		return "", fmt.Errorf("cast text is %d characters, must be %d or less", length, maxCastLength)
	}

	body, err := json.Marshal(castRequest{SignerUUID: signerUUID, Text: text})
	if err != nil {
		return "", fmt.Errorf("marshaling cast: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v2/farcaster/cast", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("neynar returned status %d: %s", resp.StatusCode, truncate(string(bodyBytes), 200))
	}

	var castResp castResponse
	if err := json.NewDecoder(resp.Body).Decode(&castResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if castResp.Cast.Hash == "" {
		return "", fmt.Errorf("no cast hash in response")
	}

	return castResp.Cast.Hash, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
