package store

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/simlexx-k/littleX/internal/model"
)

var testCreds = model.Credentials{Email: "Alice@example.com", Password: "secret"}

func TestAuthenticate(t *testing.T) {
	s := NewMemoryStore(0)
	added := s.AddUser(testCreds, "")

	user, token, err := s.Authenticate(model.Credentials{Email: "alice@example.com", Password: "secret"})

	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", token)
	assert.Equal(t, added.ID, user.ID)
	assert.Equal(t, "Alice", user.ProfileUsername)

	fromToken, ok := s.UserForToken(token)
	assert.Equal(t, true, ok)
	assert.Equal(t, added.ID, fromToken.ID)
}

func TestAuthenticateReportsExpiration(t *testing.T) {
	s := NewMemoryStore(0)
	clock := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	s.UseClock(func() time.Time { return clock })
	s.AddUser(testCreds, "")

	user, _, err := s.Authenticate(testCreds)

	assert.Equal(t, nil, err)
	assert.Equal(t, clock.Add(24*time.Hour).Unix(), user.Expiration)
}

func TestAuthenticateInvalid(t *testing.T) {
	s := NewMemoryStore(0)
	s.AddUser(testCreds, "alice")

	tests := []struct {
		name  string
		creds model.Credentials
	}{
		{name: "wrong password", creds: model.Credentials{Email: testCreds.Email, Password: "nope"}},
		{name: "unknown email", creds: model.Credentials{Email: "bob@example.com", Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, token, err := s.Authenticate(tt.creds)
			assert.Equal(t, "", token)
			assert.Equal(t, true, errors.Is(err, ErrInvalidCredentials))
		})
	}
}

func TestUserForUnknownToken(t *testing.T) {
	s := NewMemoryStore(0)
	_, ok := s.UserForToken("missing")
	assert.Equal(t, false, ok)
}

func TestFeedNewestFirstWithSearch(t *testing.T) {
	s := NewMemoryStore(0)
	user := s.AddUser(testCreds, "alice")

	_, err := s.CreateTweet(user, model.NewTweet{Content: "first #go"})
	assert.Equal(t, nil, err)
	_, err = s.CreateTweet(user, model.NewTweet{Content: "second", AIAssisted: true})
	assert.Equal(t, nil, err)
	_, err = s.CreateTweet(user, model.NewTweet{Content: "third #GO"})
	assert.Equal(t, nil, err)

	feed := s.Feed("")
	assert.Equal(t, 3, len(feed))
	assert.Equal(t, "third #GO", feed[0].Content)
	assert.Equal(t, "second", feed[1].Content)
	assert.Equal(t, true, feed[1].AIAssisted)
	assert.Equal(t, "alice", feed[2].Username)

	filtered := s.Feed("#go")
	assert.Equal(t, 2, len(filtered))
	assert.Equal(t, "third #GO", filtered[0].Content)
	assert.Equal(t, "first #go", filtered[1].Content)
}

func TestCreateTweetEmptyContent(t *testing.T) {
	s := NewMemoryStore(0)
	user := s.AddUser(testCreds, "alice")

	_, err := s.CreateTweet(user, model.NewTweet{Content: "   "})

	assert.Equal(t, true, errors.Is(err, ErrEmptyContent))
	assert.Equal(t, 0, len(s.Feed("")))
}

func TestFeedDelay(t *testing.T) {
	s := NewMemoryStore(time.Second)
	clock := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	s.UseClock(func() time.Time { return clock })
	user := s.AddUser(testCreds, "alice")

	_, err := s.CreateTweet(user, model.NewTweet{Content: "eventually"})
	assert.Equal(t, nil, err)

	assert.Equal(t, 0, len(s.Feed("")))

	clock = clock.Add(time.Second)
	assert.Equal(t, 1, len(s.Feed("")))
}
