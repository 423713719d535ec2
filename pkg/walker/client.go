package walker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/simlexx-k/littleX/internal/model"
)

const (
	LoginPath       = "/walker/login_user"
	CreateTweetPath = "/walker/create_tweet"
	LoadFeedPath    = "/walker/load_feed"
)

// Client talks to the littleX walker API. Every call is a JSON POST.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login returns the session for creds. ExpiresAt comes from the token's
// expiry claim, falling back to user.expiration, and stays zero when neither
// is present.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.Session, error) {
	data, err := c.post(ctx, LoginPath, "", creds)
	if err != nil {
		return model.Session{}, fmt.Errorf("walker login: %w", err)
	}

	var env reportEnvelope[loginReport]
	if err := json.Unmarshal(data, &env); err != nil {
		return model.Session{}, fmt.Errorf("walker login decode: %w", err)
	}

	items, ok := env.first()
	if !ok || len(items) == 0 || items[0].Token == "" {
		return model.Session{}, ErrNoToken
	}

	session := model.Session{Token: items[0].Token}
	if expiresAt, ok := TokenExpiry(session.Token); ok {
		session.ExpiresAt = expiresAt
	} else if exp, ok := items[0].userExpiry(); ok {
		session.ExpiresAt = unixExpiry(exp)
	}

	return session, nil
}

// CreateTweet succeeds on a 200 response. The body is only read to recover
// the created tweet; when it cannot be decoded the request fields are echoed.
func (c *Client) CreateTweet(ctx context.Context, token string, tweet model.NewTweet) (*model.Tweet, error) {
	data, err := c.post(ctx, CreateTweetPath, token, tweet)
	if err != nil {
		return nil, fmt.Errorf("walker create tweet: %w", err)
	}

	created := &model.Tweet{
		Content:    tweet.Content,
		AIAssisted: tweet.AIAssisted,
	}

	var env reportEnvelope[createdReport]
	if err := json.Unmarshal(data, &env); err != nil {
		return created, nil
	}

	items, ok := env.first()
	if !ok || len(items) == 0 {
		return created, nil
	}

	parsed := items[0].Context.toTweet()
	parsed.ID = rawString(items[0].ID)
	if parsed.Content == "" {
		parsed.Content = tweet.Content
	}

	return &parsed, nil
}

func (c *Client) LoadFeed(ctx context.Context, token string) ([]model.Tweet, error) {
	data, err := c.post(ctx, LoadFeedPath, token, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("walker load feed: %w", err)
	}

	var env reportEnvelope[json.RawMessage]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("walker load feed decode: %w", err)
	}

	items, ok := env.first()
	if !ok {
		return nil, ErrNoReports
	}

	tweets := make([]model.Tweet, 0, len(items))
	for _, item := range items {
		tweets = append(tweets, decodeFeedItem(item))
	}

	return tweets, nil
}

func (c *Client) post(ctx context.Context, path, token string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			Endpoint: path,
			Code:     resp.StatusCode,
			Body:     strings.TrimSpace(string(data)),
		}
	}

	return data, nil
}
