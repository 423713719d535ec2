package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/simlexx-k/littleX/internal/model"
	"github.com/simlexx-k/littleX/pkg/llm"
	"github.com/simlexx-k/littleX/pkg/walker"
)

const tokenPreviewLength = 10

type Walker interface {
	Login(ctx context.Context, creds model.Credentials) (model.Session, error)
	CreateTweet(ctx context.Context, token string, tweet model.NewTweet) (*model.Tweet, error)
	LoadFeed(ctx context.Context, token string) ([]model.Tweet, error)
}

type Options struct {
	Credentials model.Credentials
	Content     string
	FeedDelay   time.Duration
	Composer    llm.Composer
	Out         io.Writer
}

// Runner performs login, create and feed load strictly in order, printing a
// line per step to Out. Step failures are printed, never returned to main.
type Runner struct {
	walker    Walker
	composer  llm.Composer
	out       io.Writer
	creds     model.Credentials
	content   string
	feedDelay time.Duration
	wait      func(ctx context.Context, d time.Duration) error
}

type Result struct {
	Session   model.Session
	Created   *model.Tweet
	Feed      []model.Tweet
	LoginErr  error
	CreateErr error
	FeedErr   error
}

func (r Result) OK() bool {
	return r.Session.Valid() && r.LoginErr == nil && r.CreateErr == nil && r.FeedErr == nil
}

func New(w Walker, opts Options) *Runner {
	content := opts.Content
	if content == "" {
		content = model.DefaultTweetContent
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	return &Runner{
		walker:    w,
		composer:  opts.Composer,
		out:       out,
		creds:     opts.Credentials,
		content:   content,
		feedDelay: opts.FeedDelay,
		wait:      sleep,
	}
}

func (r *Runner) Run(ctx context.Context) Result {
	var res Result

	session, err := r.Login(ctx)
	res.LoginErr = err
	if !session.Valid() {
		return res
	}

	res.Session = session
	if !session.ExpiresAt.IsZero() {
		slog.Info("session expiry", "expires_at", session.ExpiresAt.Format(time.RFC3339), "expired", time.Now().After(session.ExpiresAt))
	}

	token := session.Token
	res.Created, res.CreateErr = r.CreateRecord(ctx, token)

	if err := r.pause(ctx); err != nil {
		res.FeedErr = err
		return res
	}

	res.Feed, res.FeedErr = r.ListRecords(ctx, token)

	return res
}

// Login returns a session with an empty token on any failure.
func (r *Runner) Login(ctx context.Context) (model.Session, error) {
	r.printf("Logging in...")

	session, err := r.walker.Login(ctx, r.creds)
	if err != nil {
		if errors.Is(err, walker.ErrNoToken) {
			r.printf("No token in response")
		} else {
			r.printf("Login failed: %v", err)
		}
		slog.Error("login failed", "email", r.creds.Email, "error", err)
		return model.Session{}, err
	}

	if !session.Valid() {
		r.printf("No token in response")
		return model.Session{}, walker.ErrNoToken
	}

	r.printf("Logged in. Token: %s...", preview(session.Token))
	slog.Info("logged in", "email", r.creds.Email)

	return session, nil
}

// CreateRecord posts the tweet. Success is decided by the response status.
func (r *Runner) CreateRecord(ctx context.Context, token string) (*model.Tweet, error) {
	r.printf("Creating tweet...")

	tweet := model.NewTweet{
		Content:    r.compose(ctx),
		AIAssisted: true,
	}

	created, err := r.walker.CreateTweet(ctx, token, tweet)
	if err != nil {
		r.printf("Create tweet failed: %v", err)
		if walker.IsUnauthorized(err) {
			slog.Warn("session rejected by create_tweet", "error", err)
		} else {
			slog.Error("create tweet failed", "error", err)
		}
		return nil, err
	}

	r.printf("Tweet created")
	if created != nil {
		slog.Info("tweet created", "tweet_id", created.ID)
	}

	return created, nil
}

func (r *Runner) ListRecords(ctx context.Context, token string) ([]model.Tweet, error) {
	r.printf("Loading feed...")

	feed, err := r.walker.LoadFeed(ctx, token)
	if err != nil {
		if errors.Is(err, walker.ErrNoReports) {
			r.printf("No reports in feed response")
		} else {
			r.printf("Load feed failed: %v", err)
		}
		slog.Error("load feed failed", "error", err)
		return nil, err
	}

	r.printf("Feed loaded. Found %d tweets.", len(feed))
	for _, tweet := range feed {
		r.printf("  - %s (AI: %t)", tweet.Content, tweet.AIAssisted)
	}

	return feed, nil
}

func (r *Runner) compose(ctx context.Context) string {
	if r.composer == nil {
		return r.content
	}

	post, err := r.composer.Compose(ctx, r.content)
	if err != nil {
		slog.Warn("compose failed, using fixed content", "model", r.composer.Name(), "error", err)
		return r.content
	}

	slog.Info("tweet composed", "model", r.composer.Name())
	return post
}

func (r *Runner) pause(ctx context.Context) error {
	if r.feedDelay <= 0 {
		return nil
	}
	return r.wait(ctx, r.feedDelay)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func preview(token string) string {
	runes := []rune(token)
	if len(runes) <= tokenPreviewLength {
		return token
	}
	return string(runes[:tokenPreviewLength])
}
