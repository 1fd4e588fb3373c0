package scraper

import (
	"fmt"
	"sort"
	"strings"
)

const maxInsights = 6

// themePatterns map content keywords to insight lines.
var themePatterns = []struct {
	keyword string
	label   string
}{
	{"ai", "AI/Artificial Intelligence is being discussed"},
	{"crypto", "Cryptocurrency mentions are present"},
	{"startup", "Startup ecosystem is a theme"},
	{"tips", "People are sharing tips and advice"},
	{"thread", "Thread-style content is popular"},
	{"breaking", "Breaking news or updates"},
	{"viral", "Viral content trending"},
}

var positiveWords = []string{"great", "amazing", "love", "best", "awesome", "bagus", "mantap", "keren"}
var negativeWords = []string{"bad", "worst", "hate", "terrible", "awful", "jelek", "buruk"}

// buildInsights summarizes scraped posts into short observations that get
// folded into the generation prompt.
func buildInsights(posts []ScrapedPost, topic string) []string {
	if len(posts) == 0 {
		return []string{fmt.Sprintf("No recent posts found about %q", topic)}
	}

	insights := []string{
		fmt.Sprintf("Found %d recent posts about %q", len(posts), topic),
	}

	sorted := make([]ScrapedPost, len(posts))
	copy(sorted, posts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Engagement > sorted[j].Engagement })
	if sorted[0].Engagement > 0 {
		insights = append(insights, fmt.Sprintf("Top performing post has %d engagements", sorted[0].Engagement))
	}

	var all strings.Builder
	for _, p := range posts {
		all.WriteString(strings.ToLower(p.Content))
		all.WriteByte(' ')
	}
	content := all.String()

	for _, pat := range themePatterns {
		if strings.Contains(content, pat.keyword) {
			insights = append(insights, pat.label)
		}
	}

	insights = append(insights, sentimentHint(content))

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func sentimentHint(content string) string {
	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(content, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(content, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return "Overall sentiment appears positive"
	case negative > positive:
		return "Overall sentiment appears negative or critical"
	default:
		return "Sentiment is mixed or neutral"
	}
}
