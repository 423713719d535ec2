package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	maxTweetLength = 280
)

const composeSystemPrompt = `You write short posts for the littleX social feed.

Rules:
1. Rewrite the seed text as a fresh, friendly post
2. Keep any hashtags from the seed and add at most one more
3. No quotes around the post, no preamble, no explanations
4. At most 280 characters

Output the post text only.`

var quotePairs = [][2]string{{`"`, `"`}, {"'", "'"}, {"“", "”"}}

type Composer interface {
	Compose(ctx context.Context, seed string) (string, error)
	// Name is the model the composer drafts with.
	Name() string
}

// NewComposer returns nil when provider is empty or "none".
func NewComposer(provider, openAIKey, anthropicKey string) (Composer, error) {
	switch provider {
	case "", "none":
		return nil, nil
	case ProviderOpenAI:
		if openAIKey == "" {
			return nil, fmt.Errorf("compose provider %q requires OPENAI_API_KEY", provider)
		}
		return NewOpenAIClient(openAIKey), nil
	case ProviderAnthropic:
		if anthropicKey == "" {
			return nil, fmt.Errorf("compose provider %q requires ANTHROPIC_API_KEY", provider)
		}
		return NewAnthropicClient(anthropicKey), nil
	default:
		return nil, fmt.Errorf("unknown compose provider %q", provider)
	}
}

func userPrompt(seed string) string {
	return fmt.Sprintf("Seed: %s", seed)
}

func cleanTweet(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	for _, q := range quotePairs {
		if len(content) >= len(q[0])+len(q[1]) && strings.HasPrefix(content, q[0]) && strings.HasSuffix(content, q[1]) {
			content = strings.TrimSpace(content[len(q[0]) : len(content)-len(q[1])])
			break
		}
	}

	if utf8.RuneCountInString(content) > maxTweetLength {
		content = strings.TrimSpace(string([]rune(content)[:maxTweetLength]))
	}

	return content
}
