package generator

import (
	"strings"
	"testing"
)

func TestParseHooksRoundTrip(t *testing.T) {
	raw := `Sure, here are your hooks!
{"hooks":["a","b","c","d","e"],"reasoning":"x"}
Hope these work for you.`

	result := ParseHooks(raw)
	want := []string{"a", "b", "c", "d", "e"}
	if len(result.Hooks) != len(want) {
		t.Fatalf("got %d hooks, want %d", len(result.Hooks), len(want))
	}
	for i, hook := range want {
		if result.Hooks[i] != hook {
			t.Errorf("hooks[%d] = %q, want %q", i, result.Hooks[i], hook)
		}
	}
	if result.Reasoning != "x" {
		t.Errorf("reasoning = %q, want %q", result.Reasoning, "x")
	}
}

func TestParseHooksTruncatesToFive(t *testing.T) {
	raw := `{"hooks":["1","2","3","4","5","6","7"],"reasoning":"too many"}`
	result := ParseHooks(raw)
	if len(result.Hooks) != 5 {
		t.Errorf("got %d hooks, want 5", len(result.Hooks))
	}
}

func TestParseHooksDefaultsReasoning(t *testing.T) {
	result := ParseHooks(`{"hooks":["one"]}`)
	if result.Reasoning != "" {
		t.Errorf("reasoning = %q, want empty", result.Reasoning)
	}
	if len(result.Hooks) != 1 || result.Hooks[0] != "one" {
		t.Errorf("hooks = %v", result.Hooks)
	}
}

func TestParseHooksDegrade(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no braces", "the model rambled with no JSON at all"},
		{"invalid json", "{hooks: broken"},
		{"empty hooks", `{"hooks":[],"reasoning":"nothing"}`},
		{"missing hooks", `{"reasoning":"forgot the hooks"}`},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseHooks(tt.raw)
			if len(result.Hooks) != 1 {
				t.Fatalf("fallback must be a single hook, got %v", result.Hooks)
			}
			if result.Hooks[0] != fallbackHookMessage {
				t.Errorf("hooks[0] = %q", result.Hooks[0])
			}
			if result.Reasoning != parseErrorReasoning {
				t.Errorf("reasoning = %q, want %q", result.Reasoning, parseErrorReasoning)
			}
		})
	}
}

func TestParseContentRoundTrip(t *testing.T) {
	raw := `Here you go:
{"content":"A full post","hashtags":["ai","tech"],"characterCount":11}`

	result := ParseContent(raw)
	if result.Content != "A full post" {
		t.Errorf("content = %q", result.Content)
	}
	if len(result.Hashtags) != 2 || result.Hashtags[0] != "ai" {
		t.Errorf("hashtags = %v", result.Hashtags)
	}
	if result.CharacterCount != 11 {
		t.Errorf("characterCount = %d, want 11", result.CharacterCount)
	}
}

func TestParseContentDefaultsCharacterCount(t *testing.T) {
	result := ParseContent(`{"content":"hello world"}`)
	if result.CharacterCount != 11 {
		t.Errorf("characterCount = %d, want 11", result.CharacterCount)
	}
	if result.Hashtags == nil || len(result.Hashtags) != 0 {
		t.Errorf("hashtags should default to empty list, got %v", result.Hashtags)
	}
}

func TestParseContentDegrade(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no braces", "plain refusal text"},
		{"invalid json", "{content:"},
		{"empty content", `{"content":""}`},
		{"missing content", `{"hashtags":["a"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseContent(tt.raw)
			if result.Content != fallbackContentMessage {
				t.Errorf("content = %q", result.Content)
			}
			if result.CharacterCount != 0 {
				t.Errorf("characterCount = %d, want 0", result.CharacterCount)
			}
			if len(result.Hashtags) != 0 {
				t.Errorf("hashtags = %v, want empty", result.Hashtags)
			}
		})
	}
}

func TestExtractJSONSpan(t *testing.T) {
	got, ok := extractJSON(`prefix {"a":{"b":1}} suffix`)
	if !ok {
		t.Fatal("expected span")
	}
	if got != `{"a":{"b":1}}` {
		t.Errorf("span = %q", got)
	}

	if _, ok := extractJSON("no json here"); ok {
		t.Error("expected no span without braces")
	}
	if _, ok := extractJSON("} reversed {"); ok {
		t.Error("expected no span when close precedes open")
	}
}

func TestParseHooksNestedProseBraces(t *testing.T) {
	// Greedy first-{-to-last-} span still parses when the payload is the
	// only JSON object present.
	raw := strings.Join([]string{
		"Model commentary before.",
		`{"hooks":["h1","h2"],"reasoning":"ok"}`,
	}, "\n")

	result := ParseHooks(raw)
	if len(result.Hooks) != 2 || result.Hooks[1] != "h2" {
		t.Errorf("hooks = %v", result.Hooks)
	}
}
