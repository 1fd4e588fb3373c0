package scraper

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Regions for TrendingTopics
const (
	RegionIndonesia = "indonesia"
	RegionWorldwide = "worldwide"
)

// fallbackTrending is served when the provider is unconfigured or failing.
var fallbackTrending = []TrendingTopic{
	{Name: "AI dan Machine Learning", Category: "technology"},
	{Name: "Startup Indonesia", Category: "business"},
	{Name: "Web3 dan Crypto", Category: "technology"},
	{Name: "Personal Branding", Category: "career"},
	{Name: "Produktivitas Kerja", Category: "lifestyle"},
	{Name: "Digital Marketing", Category: "business"},
	{Name: "Tips Karir", Category: "career"},
	{Name: "Investasi Pemula", Category: "finance"},
	{Name: "Tech Industry News", Category: "technology"},
	{Name: "Entrepreneurship", Category: "business"},
}

// Service produces ScrapedData for topics and serves trending topics.
// Every failure path degrades to a stub result of the same shape, so
// callers never branch on scraping availability.
type Service struct {
	runner     actorRunner
	configured bool

	mu             sync.Mutex
	cachedTrending []TrendingTopic
	cachedAt       time.Time
	cacheTTL       time.Duration
}

// NewService creates a scraping service. An empty token leaves the service
// in degraded mode: all calls return stub data.
func NewService(apifyToken string) *Service {
	s := &Service{cacheTTL: 6 * time.Hour}
	if apifyToken != "" {
		s.runner = NewApifyClient("", apifyToken)
		s.configured = true
	}
	return s
}

// newServiceWithRunner is the test seam.
func newServiceWithRunner(r actorRunner) *Service {
	return &Service{runner: r, configured: true, cacheTTL: 6 * time.Hour}
}

// Configured reports whether a provider token was supplied.
func (s *Service) Configured() bool {
	return s.configured
}

// ScrapeTopic gathers trend context for a topic. Mode "full" scrapes
// social posts with engagement data; anything else does a quick web
// search. A missing token or provider failure returns a stub instead of
// an error.
func (s *Service) ScrapeTopic(ctx context.Context, topic, mode string) *ScrapedData {
	if !s.configured {
		return &ScrapedData{
			Topic:            topic,
			TrendingKeywords: []string{"ai", "technology", "startup", "indonesia", "digital"},
			Insights: []string{
				"Scraper not configured - generating without scraped context",
				fmt.Sprintf("Topic %q will be processed with general knowledge", topic),
			},
			ScrapedAt: time.Now(),
		}
	}

	if mode == ModeFull {
		return s.scrapeFull(ctx, topic)
	}
	return s.scrapeQuick(ctx, topic)
}

func (s *Service) scrapeFull(ctx context.Context, topic string) *ScrapedData {
	items, err := s.runner.RunActor(ctx, actorTweetScraper, map[string]any{
		"searchTerms":   []string{topic},
		"maxTweets":     30,
		"sort":          "Top",
		"tweetLanguage": "id",
	})
	if err != nil {
		log.Printf("scraper: full scrape failed for %q: %v", topic, err)
		return degradedData(topic)
	}

	if len(items) > 20 {
		items = items[:20]
	}
	posts := make([]ScrapedPost, 0, len(items))
	for _, item := range items {
		content := stringField(item, "full_text", "text")
		engagement := intField(item, "favorite_count") + intField(item, "retweet_count") + intField(item, "reply_count")
		author := "unknown"
		if user, ok := item["user"].(map[string]any); ok {
			if name, ok := user["screen_name"].(string); ok && name != "" {
				author = name
			}
		}
		posts = append(posts, ScrapedPost{
			Content:    content,
			Engagement: engagement,
			Source:     "twitter",
			Author:     author,
			URL:        stringField(item, "url"),
			CreatedAt:  stringField(item, "created_at"),
		})
	}

	return &ScrapedData{
		Topic:            topic,
		TrendingKeywords: ExtractKeywords(posts, 20),
		RelevantPosts:    posts,
		Insights:         buildInsights(posts, topic),
		ScrapedAt:        time.Now(),
	}
}

func (s *Service) scrapeQuick(ctx context.Context, topic string) *ScrapedData {
	items, err := s.runner.RunActor(ctx, actorGoogleSearch, map[string]any{
		"queries":          topic + " site:twitter.com OR site:linkedin.com",
		"maxPagesPerQuery": 1,
		"resultsPerPage":   10,
		"languageCode":     "id",
		"countryCode":      "id",
	})
	if err != nil {
		log.Printf("scraper: quick scrape failed for %q: %v", topic, err)
		return &ScrapedData{
			Topic:     topic,
			Insights:  []string{fmt.Sprintf("Scraping skipped for %q", topic)},
			ScrapedAt: time.Now(),
		}
	}

	if len(items) > 10 {
		items = items[:10]
	}
	posts := make([]ScrapedPost, 0, len(items))
	for _, item := range items {
		posts = append(posts, ScrapedPost{
			Content: stringField(item, "title") + " - " + stringField(item, "description"),
			Source:  "web_search",
			URL:     stringField(item, "url"),
		})
	}

	return &ScrapedData{
		Topic:            topic,
		TrendingKeywords: ExtractKeywords(posts, 20),
		RelevantPosts:    posts,
		Insights: []string{
			fmt.Sprintf("Found %d relevant web results for %q", len(posts), topic),
			"Content based on recent web mentions",
		},
		ScrapedAt: time.Now(),
	}
}

func degradedData(topic string) *ScrapedData {
	return &ScrapedData{
		Topic: topic,
		Insights: []string{
			fmt.Sprintf("Could not scrape data for %q", topic),
			"Content will be generated without real-time context",
		},
		ScrapedAt: time.Now(),
	}
}

// TrendingTopics returns current trending topics for the region, serving
// a cached result while fresh and the static fallback list when the
// provider is unavailable.
func (s *Service) TrendingTopics(ctx context.Context, region string) []TrendingTopic {
	if region == "" {
		region = RegionIndonesia
	}

	if !s.configured {
		return fallbackTrending
	}

	if region == RegionIndonesia {
		s.mu.Lock()
		if s.cachedTrending != nil && time.Since(s.cachedAt) < s.cacheTTL {
			cached := s.cachedTrending
			s.mu.Unlock()
			return cached
		}
		s.mu.Unlock()
	}

	topics, err := s.fetchTrending(ctx, region)
	if err != nil {
		log.Printf("scraper: trending fetch failed: %v", err)
		return fallbackTrending
	}

	if region == RegionIndonesia {
		s.mu.Lock()
		s.cachedTrending = topics
		s.cachedAt = time.Now()
		s.mu.Unlock()
	}
	return topics
}

// RefreshTrending re-fetches the default-region trending cache. Called by
// the scheduler so API reads stay warm.
func (s *Service) RefreshTrending(ctx context.Context) error {
	if !s.configured {
		return nil
	}

	topics, err := s.fetchTrending(ctx, RegionIndonesia)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cachedTrending = topics
	s.cachedAt = time.Now()
	s.mu.Unlock()
	return nil
}

func (s *Service) fetchTrending(ctx context.Context, region string) ([]TrendingTopic, error) {
	geo := ""
	if region == RegionIndonesia {
		geo = "ID"
	}

	items, err := s.runner.RunActor(ctx, actorGoogleTrends, map[string]any{
		"geo":        geo,
		"outputMode": "complete",
		"maxItems":   20,
		"isPublic":   true,
	})
	if err != nil {
		return nil, err
	}

	if len(items) > 15 {
		items = items[:15]
	}
	topics := make([]TrendingTopic, 0, len(items))
	for _, item := range items {
		name := stringField(item, "title", "query", "term")
		if name == "" {
			name = "Unknown"
		}
		category := stringField(item, "category")
		if category == "" {
			category = "general"
		}
		topics = append(topics, TrendingTopic{
			Name:     name,
			Volume:   stringField(item, "formattedTraffic"),
			Category: category,
		})
	}
	return topics, nil
}

// stringField returns the first non-empty string value among the keys.
func stringField(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := item[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// intField reads a numeric field; dataset items decode numbers as float64.
func intField(item map[string]any, key string) int {
	switch v := item[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
