// Package generator runs the prompt -> completion -> parse -> validate
// pipeline that turns a personality and a topic into post hooks and full
// post content.
package generator

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/bitai/castforge/internal/llm"
	"github.com/bitai/castforge/internal/personality"
	"github.com/bitai/castforge/internal/prompt"
	"github.com/bitai/castforge/internal/scraper"
)

// CompletionClient is the provider call the pipeline depends on. The real
// implementation is llm.Client; tests use a fake.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, params llm.Params) (string, error)
}

// Sampling parameters per call site: hooks run hotter with a small token
// cap for variety, content runs cooler with room to write, and the length
// retry tightens both.
var (
	hookParams         = llm.Params{Temperature: 0.8, MaxTokens: 500}
	contentParams      = llm.Params{Temperature: 0.7, MaxTokens: 1500}
	contentRetryParams = llm.Params{Temperature: 0.6, MaxTokens: 1200}
)

// HookSet is the result of one hook-generation request.
type HookSet struct {
	Hooks     []string `json:"hooks"`
	Reasoning string   `json:"reasoning"`
}

// GeneratedPost is the result of one content-generation request.
// ValidationErrors is populated when the content still violates the length
// contract; the content is returned regardless.
type GeneratedPost struct {
	Content          string   `json:"content"`
	Hashtags         []string `json:"hashtags"`
	CharacterCount   int      `json:"characterCount"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}

// Generator orchestrates generation requests. It holds no per-request
// state; one instance serves concurrent requests.
type Generator struct {
	client CompletionClient
}

// New creates a generator on top of a completion client.
func New(client CompletionClient) *Generator {
	return &Generator{client: client}
}

// GenerateHooks produces up to 5 candidate opening hooks for a topic.
// Provider failure is fatal; unparseable output degrades to a fallback
// hook inside the returned set.
func (g *Generator) GenerateHooks(ctx context.Context, profile *personality.Profile, topic string, scraped *scraper.ScrapedData) (*HookSet, error) {
	systemPrompt := prompt.BuildSystemPrompt(profile)
	userPrompt := prompt.BuildHookPrompt(topic, scraped)

	raw, err := g.client.Complete(ctx, systemPrompt, userPrompt, hookParams)
	if err != nil {
		return nil, fmt.Errorf("generating hooks: %w", err)
	}

	result := ParseHooks(raw)
	return &HookSet{
		Hooks:     result.Hooks,
		Reasoning: result.Reasoning,
	}, nil
}

// GenerateContent expands a selected hook into a full post. When the first
// result exceeds the personality's length limit, the task prompt is rebuilt
// with the exact overage and retried exactly once with stricter sampling;
// the retry result is returned as-is without a second validation pass.
// Non-length validation failures are returned alongside the content, not
// retried.
func (g *Generator) GenerateContent(ctx context.Context, profile *personality.Profile, topic, selectedHook string, scraped *scraper.ScrapedData) (*GeneratedPost, error) {
	systemPrompt := prompt.BuildSystemPrompt(profile)
	userPrompt := prompt.BuildContentPrompt(topic, selectedHook, profile, scraped)
	maxLength := profile.Settings.MaxPostLength

	raw, err := g.client.Complete(ctx, systemPrompt, userPrompt, contentParams)
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}

	result := ParseContent(raw)
	validation := ValidateContent(result.Content, maxLength)
	if validation.Valid {
		return postFrom(result), nil
	}

	length := utf8.RuneCountInString(result.Content)
	if length > maxLength {
		retryPrompt := prompt.BuildContentRetryPrompt(userPrompt, length, maxLength)

		retryRaw, err := g.client.Complete(ctx, systemPrompt, retryPrompt, contentRetryParams)
		if err != nil {
			return nil, fmt.Errorf("regenerating content: %w", err)
		}

		return postFrom(ParseContent(retryRaw)), nil
	}

	post := postFrom(result)
	post.ValidationErrors = validation.Errors
	return post, nil
}

// postFrom builds the caller-facing result, recomputing the character
// count from the actual string.
func postFrom(result ContentResult) *GeneratedPost {
	return &GeneratedPost{
		Content:        result.Content,
		Hashtags:       result.Hashtags,
		CharacterCount: utf8.RuneCountInString(result.Content),
	}
}
