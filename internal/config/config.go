package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/simlexx-k/littleX/internal/model"
)

const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultEmail     = "a3slabs@gmail.com"
	DefaultPassword  = "runnermax"
	DefaultFeedDelay = time.Second
	DefaultMockAddr  = ":8000"
)

type Smoke struct {
	BaseURL         string
	Credentials     model.Credentials
	TweetContent    string
	FeedDelay       time.Duration
	ComposeProvider string
	OpenAIAPIKey    string
	AnthropicAPIKey string
}

type Mock struct {
	Addr        string
	Credentials model.Credentials
	FeedDelay   time.Duration
	FrontendURL string
}

// LoadSmoke reads the runner settings from the environment. Callers load
// .env first with godotenv.
func LoadSmoke() Smoke {
	return Smoke{
		BaseURL: getEnv("WALKER_BASE_URL", DefaultBaseURL),
		Credentials: model.Credentials{
			Email:    getEnv("SMOKE_EMAIL", DefaultEmail),
			Password: getEnv("SMOKE_PASSWORD", DefaultPassword),
		},
		TweetContent:    getEnv("SMOKE_TWEET_CONTENT", model.DefaultTweetContent),
		FeedDelay:       getDuration("SMOKE_FEED_DELAY", DefaultFeedDelay),
		ComposeProvider: strings.ToLower(strings.TrimSpace(os.Getenv("COMPOSE_PROVIDER"))),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
	}
}

func LoadMock() Mock {
	return Mock{
		Addr: getEnv("MOCK_ADDR", DefaultMockAddr),
		Credentials: model.Credentials{
			Email:    getEnv("SMOKE_EMAIL", DefaultEmail),
			Password: getEnv("SMOKE_PASSWORD", DefaultPassword),
		},
		FeedDelay:   getDuration("MOCK_FEED_DELAY", 0),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}
}

func getEnv(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(name string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("invalid duration, using default", "env", name, "value", raw, "error", err)
		return defaultValue
	}

	if parsed < 0 {
		slog.Warn("negative duration, using default", "env", name, "value", raw, "default", defaultValue)
		return defaultValue
	}

	return parsed
}
