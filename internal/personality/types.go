package personality

import (
	"encoding/json"
	"strings"
)

// Tone values for Settings.Tone
const (
	ToneFormal        = "formal"
	ToneCasual        = "casual"
	ToneHumorous      = "humorous"
	ToneInspirational = "inspirational"
	ToneEducational   = "educational"
)

// Language codes for Settings.Language
const (
	LanguageIndonesian = "id"
	LanguageEnglish    = "en"
)

// Hashtag styles for Settings.HashtagStyle
const (
	HashtagNone     = "none"
	HashtagMinimal  = "minimal"
	HashtagModerate = "moderate"
)

// Emoji usage levels for Settings.EmojiUsage
const (
	EmojiNone     = "none"
	EmojiMinimal  = "minimal"
	EmojiModerate = "moderate"
	EmojiHeavy    = "heavy"
)

// Template categories
const (
	CategoryTech     = "tech"
	CategoryCrypto   = "crypto"
	CategoryBusiness = "business"
	CategoryCreative = "creative"
	CategoryCustom   = "custom"
)

// Bio holds a personality background as one or more alternate lines.
// It accepts either a JSON string or a JSON array of strings so profiles
// authored in both shapes decode into the same type.
type Bio []string

// UnmarshalJSON accepts "a bio" or ["line one", "line two"].
func (b *Bio) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*b = nil
		} else {
			*b = Bio{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*b = Bio(many)
	return nil
}

// Text joins the bio lines into a single block for prompt rendering.
func (b Bio) Text() string {
	return strings.Join(b, "\n")
}

// MessageExample is one turn in a sample conversation.
type MessageExample struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Style holds free-text writing rules grouped by output surface.
type Style struct {
	All  []string `json:"all"`
	Chat []string `json:"chat"`
	Post []string `json:"post"`
}

// Settings controls how the generated output should look.
type Settings struct {
	Tone          string `json:"tone"`
	Language      string `json:"language"`
	MaxPostLength int    `json:"maxPostLength"`
	HashtagStyle  string `json:"hashtagStyle"`
	EmojiUsage    string `json:"emojiUsage"`
}

// Profile is a reusable authorial voice used to condition generation.
// Profiles are immutable once constructed; the generation pipeline only
// reads them, so a single catalog instance is safe to share.
type Profile struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Bio             Bio                `json:"bio"`
	Username        string             `json:"username,omitempty"`
	Adjectives      []string           `json:"adjectives"`
	Style           Style              `json:"style"`
	Topics          []string           `json:"topics"`
	Knowledge       []string           `json:"knowledge"`
	Lore            []string           `json:"lore"`
	MessageExamples [][]MessageExample `json:"messageExamples"`
	PostExamples    []string           `json:"postExamples"`
	Settings        Settings           `json:"settings"`
	IsTemplate      bool               `json:"isTemplate"`
	Category        string             `json:"category,omitempty"`
}

// DefaultSettings are applied to new profiles where the input omits them.
var DefaultSettings = Settings{
	Tone:          ToneCasual,
	Language:      LanguageIndonesian,
	MaxPostLength: 600,
	HashtagStyle:  HashtagMinimal,
	EmojiUsage:    EmojiMinimal,
}

// Input is the minimal shape accepted when a caller supplies a custom
// profile instead of picking a template.
type Input struct {
	Name            string             `json:"name"`
	Bio             Bio                `json:"bio"`
	Username        string             `json:"username,omitempty"`
	Adjectives      []string           `json:"adjectives"`
	Style           Style              `json:"style"`
	Topics          []string           `json:"topics"`
	Knowledge       []string           `json:"knowledge,omitempty"`
	Lore            []string           `json:"lore,omitempty"`
	MessageExamples [][]MessageExample `json:"messageExamples,omitempty"`
	PostExamples    []string           `json:"postExamples,omitempty"`
	Settings        *Settings          `json:"settings,omitempty"`
}

// NewProfile builds a full profile from an input, filling defaults for
// anything the input left out.
func NewProfile(id string, in Input) *Profile {
	settings := DefaultSettings
	if in.Settings != nil {
		if in.Settings.Tone != "" {
			settings.Tone = in.Settings.Tone
		}
		if in.Settings.Language != "" {
			settings.Language = in.Settings.Language
		}
		if in.Settings.MaxPostLength > 0 {
			settings.MaxPostLength = in.Settings.MaxPostLength
		}
		if in.Settings.HashtagStyle != "" {
			settings.HashtagStyle = in.Settings.HashtagStyle
		}
		if in.Settings.EmojiUsage != "" {
			settings.EmojiUsage = in.Settings.EmojiUsage
		}
	}

	return &Profile{
		ID:              id,
		Name:            in.Name,
		Bio:             in.Bio,
		Username:        in.Username,
		Adjectives:      in.Adjectives,
		Style:           in.Style,
		Topics:          in.Topics,
		Knowledge:       in.Knowledge,
		Lore:            in.Lore,
		MessageExamples: in.MessageExamples,
		PostExamples:    in.PostExamples,
		Settings:        settings,
		IsTemplate:      false,
		Category:        CategoryCustom,
	}
}
