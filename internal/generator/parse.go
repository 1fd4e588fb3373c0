package generator

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Fallback values returned when model output cannot be parsed. The pipeline
// degrades to these instead of erroring so a flaky model never breaks the
// response shape; callers detect the soft failure by content inspection.
const (
	fallbackHookMessage    = "Failed to generate hooks. Please try again."
	fallbackContentMessage = "Failed to generate content. Please try again."
	parseErrorReasoning    = "Parse error"
)

const maxHooks = 5

// HookResult is the parsed hook-generation payload.
type HookResult struct {
	Hooks     []string `json:"hooks"`
	Reasoning string   `json:"reasoning"`
}

// ContentResult is the parsed content-generation payload.
type ContentResult struct {
	Content        string   `json:"content"`
	Hashtags       []string `json:"hashtags"`
	CharacterCount int      `json:"characterCount"`
}

// extractJSON returns the first-{ to last-} span of s, tolerating prose the
// model wraps around the payload despite instructions.
func extractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// ParseHooks recovers a hook list from raw model output. It never fails:
// malformed output degrades to a single fallback hook.
func ParseHooks(raw string) HookResult {
	jsonStr, ok := extractJSON(raw)
	if !ok {
		return hookFallback()
	}

	var result HookResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return hookFallback()
	}
	if len(result.Hooks) == 0 {
		return hookFallback()
	}

	if len(result.Hooks) > maxHooks {
		result.Hooks = result.Hooks[:maxHooks]
	}
	return result
}

func hookFallback() HookResult {
	return HookResult{
		Hooks:     []string{fallbackHookMessage},
		Reasoning: parseErrorReasoning,
	}
}

// ParseContent recovers a post from raw model output. The model-reported
// characterCount is informational; it defaults to the actual content length
// and validation always recomputes from the string anyway.
func ParseContent(raw string) ContentResult {
	jsonStr, ok := extractJSON(raw)
	if !ok {
		return contentFallback()
	}

	var result ContentResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return contentFallback()
	}
	if result.Content == "" {
		return contentFallback()
	}

	if result.Hashtags == nil {
		result.Hashtags = []string{}
	}
	if result.CharacterCount == 0 {
		result.CharacterCount = utf8.RuneCountInString(result.Content)
	}
	return result
}

func contentFallback() ContentResult {
	return ContentResult{
		Content:        fallbackContentMessage,
		Hashtags:       []string{},
		CharacterCount: 0,
	}
}
