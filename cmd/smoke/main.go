package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/simlexx-k/littleX/internal/config"
	"github.com/simlexx-k/littleX/internal/runner"
	"github.com/simlexx-k/littleX/pkg/llm"
	"github.com/simlexx-k/littleX/pkg/walker"
)

func main() {

	godotenv.Load()

	// stdout carries the console report, so structured logs go to stderr.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg := config.LoadSmoke()

	composer, err := llm.NewComposer(cfg.ComposeProvider, cfg.OpenAIAPIKey, cfg.AnthropicAPIKey)
	if err != nil {
		slog.Warn("composer disabled", "provider", cfg.ComposeProvider, "error", err)
	}
	if composer != nil {
		slog.Info("composer enabled", "provider", cfg.ComposeProvider, "model", composer.Name())
	}

	client := walker.NewClient(cfg.BaseURL)

	r := runner.New(client, runner.Options{
		Credentials: cfg.Credentials,
		Content:     cfg.TweetContent,
		FeedDelay:   cfg.FeedDelay,
		Composer:    composer,
		Out:         os.Stdout,
	})

	res := r.Run(context.Background())

	slog.Info("smoke run finished",
		"base_url", client.BaseURL(),
		"ok", res.OK(),
		"logged_in", res.Session.Valid(),
		"created", res.Created != nil,
		"feed_size", len(res.Feed),
	)
}
