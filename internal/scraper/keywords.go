package scraper

import (
	"regexp"
	"sort"
	"strings"
)

// stopwords covers English and Indonesian function words so keyword
// extraction surfaces topical terms rather than glue.
var stopwords = map[string]bool{
	// English
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "shall": true, "can": true, "need": true,
	"it": true, "its": true, "this": true, "that": true, "these": true,
	"those": true, "i": true, "you": true, "he": true, "she": true, "we": true,
	"they": true, "what": true, "which": true, "who": true, "whom": true,
	"when": true, "where": true, "why": true, "how": true, "all": true,
	"each": true, "every": true, "both": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "no": true,
	"nor": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "just": true,
	"also": true, "now": true, "here": true, "there": true, "then": true,
	"once": true, "about": true, "into": true, "over": true, "after": true,

	// Indonesian
	"yang": true, "dan": true, "di": true, "ke": true, "dari": true,
	"ini": true, "itu": true, "dengan": true, "untuk": true, "pada": true,
	"adalah": true, "juga": true, "akan": true, "bisa": true, "ada": true,
	"tidak": true, "sudah": true, "saya": true, "kita": true, "anda": true,
	"mereka": true, "dia": true, "kami": true, "nya": true, "lagi": true,
	"lebih": true, "atau": true, "karena": true, "tapi": true, "kalau": true,
	"seperti": true, "harus": true, "banyak": true, "masih": true,
	"bahwa": true, "saat": true, "sangat": true, "hanya": true,
}

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// ExtractKeywords returns the most frequent non-stopword terms across the
// given posts, longest streak of mentions first, capped at max.
func ExtractKeywords(posts []ScrapedPost, max int) []string {
	counts := make(map[string]int)

	for _, post := range posts {
		words := wordPattern.FindAllString(strings.ToLower(post.Content), -1)
		for _, word := range words {
			if len(word) <= 3 || stopwords[word] {
				continue
			}
			counts[word]++
		}
	}

	type termCount struct {
		term  string
		count int
	}
	ranked := make([]termCount, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, termCount{term, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].term < ranked[j].term
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	keywords := make([]string, len(ranked))
	for i, tc := range ranked {
		keywords[i] = tc.term
	}
	return keywords
}
