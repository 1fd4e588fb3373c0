// Package prompt builds the system and task prompts that condition post
// generation. Everything here is pure string composition: identical inputs
// produce identical prompts, and section order is a contract that snapshot
// tests depend on.
package prompt

import (
	"fmt"
	"strings"

	"github.com/bitai/castforge/internal/personality"
	"github.com/bitai/castforge/internal/scraper"
)

const hookRequirements = `## Requirements for each hook:
1. Be attention-grabbing and match my personality style
2. Maximum 60 characters
3. Create curiosity or provide immediate value
4. Make people want to read more
5. Each hook should have a different angle/approach

## Hook Types to Include:
- Question hook (ask a provocative question)
- Statement hook (bold claim or observation)
- Story hook (start a mini narrative)
- Data hook (interesting stat or fact)
- Contrarian hook (challenge common belief)
`

const hookOutputFormat = `
## Output Format:
Return ONLY a valid JSON object with this structure:
{
  "hooks": ["hook1", "hook2", "hook3", "hook4", "hook5"],
  "reasoning": "Brief explanation of why these hooks would work"
}

Do not include any text outside the JSON object.`

const contentOutputFormat = `
## Output Format:
Return ONLY a valid JSON object with this structure:
{
  "content": "The complete post text with line breaks (use \n for new lines)",
  "hashtags": ["hashtag1", "hashtag2"],
  "characterCount": 123
}

Do not include any text outside the JSON object.`

// BuildSystemPrompt renders a personality into the system prompt. Sections
// appear in a fixed order: identity, bio, traits, expertise, knowledge,
// lore, style rules, post examples, settings.
func BuildSystemPrompt(p *personality.Profile) string {
	sections := []string{
		"# Identity",
		fmt.Sprintf("You are %s, a personal branding content creator.", p.Name),
		"",
		"## Bio",
		p.Bio.Text(),
		"",
		"## Personality Traits",
		bulleted(p.Adjectives),
		"",
		"## Areas of Expertise",
		bulleted(p.Topics),
	}

	if len(p.Knowledge) > 0 {
		sections = append(sections,
			"",
			"## Domain Knowledge",
			bulleted(p.Knowledge),
		)
	}

	if len(p.Lore) > 0 {
		sections = append(sections,
			"",
			"## Background (use indirectly, don't reveal directly)",
			bulleted(p.Lore),
		)
	}

	sections = append(sections,
		"",
		"## Writing Style Guidelines",
		"### General Rules",
		bulleted(p.Style.All),
		"",
		"### For Social Media Posts",
		bulleted(p.Style.Post),
	)

	if len(p.PostExamples) > 0 {
		examples := make([]string, len(p.PostExamples))
		for i, ex := range p.PostExamples {
			examples[i] = fmt.Sprintf("Example %d:\n%q", i+1, ex)
		}
		sections = append(sections,
			"",
			"## Example Posts (match this style)",
			strings.Join(examples, "\n\n"),
		)
	}

	sections = append(sections,
		"",
		"## Content Settings",
		fmt.Sprintf("- Tone: %s", p.Settings.Tone),
		fmt.Sprintf("- Language: %s", languageName(p.Settings.Language)),
		fmt.Sprintf("- Maximum post length: %d characters", p.Settings.MaxPostLength),
		fmt.Sprintf("- Hashtag usage: %s", p.Settings.HashtagStyle),
		fmt.Sprintf("- Emoji usage: %s", p.Settings.EmojiUsage),
	)

	return strings.Join(sections, "\n")
}

// BuildHookPrompt builds the task prompt asking for 5 candidate hooks.
func BuildHookPrompt(topic string, scraped *scraper.ScrapedData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate 5 different hook options for a Farcaster post about %q.\n\n", topic)
	b.WriteString(hookRequirements)

	if scraped != nil && len(scraped.Insights) > 0 {
		b.WriteString("\n## Current Trends & Context (use for relevance):\n")
		b.WriteString(bulleted(limit(scraped.Insights, 5)))
		b.WriteString("\n\n## Trending Keywords:\n")
		b.WriteString(strings.Join(limit(scraped.TrendingKeywords, 10), ", "))
		b.WriteString("\n")
	}

	b.WriteString(hookOutputFormat)
	return b.String()
}

// BuildContentPrompt builds the task prompt turning a chosen hook into a
// full post.
func BuildContentPrompt(topic, selectedHook string, p *personality.Profile, scraped *scraper.ScrapedData) string {
	maxLen := p.Settings.MaxPostLength
	targetMin := maxLen * 8 / 10

	var b strings.Builder

	fmt.Fprintf(&b, "Create a comprehensive Farcaster post about %q.\n\n", topic)
	fmt.Fprintf(&b, "## MUST START WITH THIS HOOK:\n%q\n\n", selectedHook)

	b.WriteString(`## Content Structure (IMPORTANT - follow this structure):
1. **Opening Hook** (line 1): Use the hook provided above
2. **Context/Problem** (1-2 lines): Explain why this matters or set up the situation
3. **Main Points** (3-5 bullet points or numbered list): Provide detailed insights, tips, or observations
4. **Conclusion/CTA** (1 line): End with a thought-provoking question, call-to-action, or key takeaway

## Requirements:
1. Continue naturally from the hook - expand it into a full, valuable post
2. Match my personality and style EXACTLY
`)
	fmt.Fprintf(&b, "3. AIM for %d-%d characters (use the space!)\n", targetMin, maxLen)
	b.WriteString(`4. Be DETAILED - don't just give surface-level content
5. Include specific examples, numbers, or actionable advice when relevant
6. Use line breaks to improve readability
7. Make it shareable and engaging
`)

	b.WriteString(hashtagInstruction(p.Settings.HashtagStyle))
	b.WriteString(emojiInstruction(p.Settings.EmojiUsage))

	if scraped != nil && len(scraped.Insights) > 0 {
		b.WriteString("\n## Current Context & Trends (incorporate naturally):\n")
		b.WriteString(bulleted(limit(scraped.Insights, 5)))
		b.WriteString("\n\n## Trending Keywords to Consider:\n")
		b.WriteString(strings.Join(limit(scraped.TrendingKeywords, 8), ", "))
		b.WriteString("\n")
	}

	b.WriteString("\n## IMPORTANT REMINDERS:\n")
	b.WriteString("- DO NOT be brief or superficial - provide REAL VALUE\n")
	fmt.Fprintf(&b, "- Use the full character limit available (aim for %d+ characters)\n", targetMin)
	b.WriteString("- Include specific details, examples, or data points\n")
	b.WriteString("- Structure with line breaks for readability\n")

	b.WriteString(contentOutputFormat)
	return b.String()
}

// BuildContentRetryPrompt appends a hard length restatement to the original
// task prompt for the single over-length retry.
func BuildContentRetryPrompt(basePrompt string, gotLength, maxLength int) string {
	return fmt.Sprintf("%s\n\nIMPORTANT: Your previous response was %d characters. You MUST stay under %d characters. Be more concise.",
		basePrompt, gotLength, maxLength)
}

func hashtagInstruction(style string) string {
	switch style {
	case personality.HashtagNone:
		return "8. Do NOT use any hashtags\n"
	case personality.HashtagMinimal:
		return "8. Include 1-2 relevant hashtags at the end\n"
	default:
		return "8. Include 2-3 relevant hashtags at the end\n"
	}
}

func emojiInstruction(usage string) string {
	switch usage {
	case personality.EmojiNone:
		return "9. Do NOT use emojis\n"
	case personality.EmojiMinimal:
		return "9. Use emojis sparingly (1-3 maximum) to highlight key points\n"
	case personality.EmojiModerate:
		return "9. Use emojis moderately to enhance readability and engagement\n"
	default:
		return "9. Use emojis freely to make the post expressive and fun\n"
	}
}

func bulleted(lines []string) string {
	items := make([]string, len(lines))
	for i, line := range lines {
		items[i] = "- " + line
	}
	return strings.Join(items, "\n")
}

func limit(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func languageName(code string) string {
	if code == personality.LanguageIndonesian {
		return "Indonesian"
	}
	return "English"
}
