package models

import (
	"github.com/bitai/castforge/internal/db"
	"github.com/bitai/castforge/internal/personality"
	"github.com/bitai/castforge/internal/scraper"
)

// HooksRequest asks for candidate opening hooks. Exactly one of
// PersonalityID or Personality must be set; a custom personality is
// normalized with defaults before use.
type HooksRequest struct {
	PersonalityID string               `json:"personality_id,omitempty"`
	Personality   *personality.Input   `json:"personality,omitempty"`
	Topic         string               `json:"topic"`
	ScrapedData   *scraper.ScrapedData `json:"scraped_data,omitempty"`
}

// HooksResponse is returned by the hooks endpoint
type HooksResponse struct {
	Success   bool     `json:"success"`
	Hooks     []string `json:"hooks,omitempty"`
	Reasoning string   `json:"reasoning,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// ContentRequest asks for a full post expanded from a selected hook.
type ContentRequest struct {
	PersonalityID string               `json:"personality_id,omitempty"`
	Personality   *personality.Input   `json:"personality,omitempty"`
	Topic         string               `json:"topic"`
	SelectedHook  string               `json:"selected_hook"`
	ScrapedData   *scraper.ScrapedData `json:"scraped_data,omitempty"`
	UserAddress   string               `json:"user_address,omitempty"`
}

// ContentResponse is returned by the content endpoint. ValidationErrors is
// a warning, not a failure: the content is present either way.
type ContentResponse struct {
	Success          bool     `json:"success"`
	Content          string   `json:"content,omitempty"`
	Hashtags         []string `json:"hashtags,omitempty"`
	CharacterCount   int      `json:"character_count,omitempty"`
	ValidationErrors []string `json:"validation_errors,omitempty"`
	ContentID        string   `json:"content_id,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// ScrapeRequest asks for trend context on a topic
type ScrapeRequest struct {
	Topic string `json:"topic"`
	Mode  string `json:"mode,omitempty"` // "quick" (default) or "full"
}

// ScrapeResponse is returned by the scrape endpoint
type ScrapeResponse struct {
	Success bool                 `json:"success"`
	Data    *scraper.ScrapedData `json:"data,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// TrendingResponse is returned by the trending endpoint
type TrendingResponse struct {
	Success bool                    `json:"success"`
	Topics  []scraper.TrendingTopic `json:"topics,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

// TemplatesResponse is returned by the templates endpoint
type TemplatesResponse struct {
	Success   bool                  `json:"success"`
	Templates []personality.Profile `json:"templates,omitempty"`
	Template  *personality.Profile  `json:"template,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// HistoryResponse is returned by the history endpoint
type HistoryResponse struct {
	Success bool               `json:"success"`
	Data    []db.ContentRecord `json:"data"`
	Total   int                `json:"total"`
	Error   string             `json:"error,omitempty"`
}

// UpdateContentRequest changes a history row's status or cast hash
type UpdateContentRequest struct {
	ContentID string `json:"content_id"`
	Status    string `json:"status,omitempty"`
	CastHash  string `json:"cast_hash,omitempty"`
}

// UpdateContentResponse is returned by the update endpoint
type UpdateContentResponse struct {
	Success bool              `json:"success"`
	Data    *db.ContentRecord `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// PublishRequest posts finished content to Farcaster
type PublishRequest struct {
	SignerUUID string `json:"signer_uuid"`
	Text       string `json:"text"`
	ContentID  string `json:"content_id,omitempty"`
}

// PublishResponse is returned by the publish endpoint
type PublishResponse struct {
	Success bool   `json:"success"`
	Hash    string `json:"hash,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Database string `json:"database"`
	Scraper  string `json:"scraper"`
	Version  string `json:"version"`
}
