package scraper

import "time"

// Modes for ScrapeTopic
const (
	ModeQuick = "quick"
	ModeFull  = "full"
)

// ScrapedPost is one post or search result pulled from an external source.
type ScrapedPost struct {
	Content    string `json:"content"`
	Engagement int    `json:"engagement"`
	Source     string `json:"source"`
	Author     string `json:"author,omitempty"`
	URL        string `json:"url,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// ScrapedData is trend enrichment for a topic. The generation pipeline
// treats it as opaque input: a degraded stub and a real result have the
// same shape and flow through identically.
type ScrapedData struct {
	Topic            string        `json:"topic"`
	TrendingKeywords []string      `json:"trendingKeywords"`
	RelevantPosts    []ScrapedPost `json:"relevantPosts"`
	Insights         []string      `json:"insights"`
	ScrapedAt        time.Time     `json:"scrapedAt"`
}

// TrendingTopic is one entry from the trending feed.
type TrendingTopic struct {
	Name     string `json:"name"`
	Volume   string `json:"volume,omitempty"`
	Category string `json:"category,omitempty"`
}
