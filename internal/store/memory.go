package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simlexx-k/littleX/internal/model"
)

// sessionTTL sets the expiration reported on the user at login. Sessions are
// not actually expired by the store.
const sessionTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyContent       = errors.New("tweet content is empty")
)

type account struct {
	user     model.User
	password string
}

type storedTweet struct {
	tweet     model.Tweet
	createdAt time.Time
	seq       int
}

// MemoryStore backs the mock walker service. Tweets become visible in the
// feed feedDelay after they are created.
type MemoryStore struct {
	mu        sync.RWMutex
	accounts  map[string]*account
	sessions  map[string]string
	tweets    []storedTweet
	feedDelay time.Duration
	now       func() time.Time
}

func NewMemoryStore(feedDelay time.Duration) *MemoryStore {
	return &MemoryStore{
		accounts:  make(map[string]*account),
		sessions:  make(map[string]string),
		feedDelay: feedDelay,
		now:       time.Now,
	}
}

// UseClock replaces the time source used for creation stamps and feed
// visibility.
func (s *MemoryStore) UseClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryStore) AddUser(creds model.Credentials, username string) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username == "" {
		username, _, _ = strings.Cut(creds.Email, "@")
	}

	user := model.User{
		ID:              uuid.NewString(),
		Email:           creds.Email,
		RootID:          uuid.NewString(),
		IsActivated:     true,
		ProfileUsername: username,
	}
	s.accounts[strings.ToLower(creds.Email)] = &account{user: user, password: creds.Password}

	return user
}

// Authenticate opens a new session and returns its token.
func (s *MemoryStore) Authenticate(creds model.Credentials) (model.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[strings.ToLower(creds.Email)]
	if !ok || acc.password != creds.Password {
		return model.User{}, "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.sessions[token] = strings.ToLower(creds.Email)

	user := acc.user
	user.Expiration = s.now().Add(sessionTTL).Unix()

	return user, token, nil
}

func (s *MemoryStore) UserForToken(token string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.sessions[token]
	if !ok {
		return model.User{}, false
	}

	acc, ok := s.accounts[email]
	if !ok {
		return model.User{}, false
	}

	return acc.user, true
}

func (s *MemoryStore) CreateTweet(user model.User, tweet model.NewTweet) (model.Tweet, error) {
	if strings.TrimSpace(tweet.Content) == "" {
		return model.Tweet{}, ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	created := model.Tweet{
		ID:         uuid.NewString(),
		Username:   user.ProfileUsername,
		Content:    tweet.Content,
		AIAssisted: tweet.AIAssisted,
		Likes:      []string{},
		Comments:   []model.Comment{},
		CreatedAt:  now.UTC().Format(time.RFC3339),
	}

	s.tweets = append(s.tweets, storedTweet{tweet: created, createdAt: now, seq: len(s.tweets)})

	return created, nil
}

// Feed returns visible tweets newest first. A non-empty search keeps only
// tweets whose content contains it, ignoring case.
func (s *MemoryStore) Feed(search string) []model.Tweet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	search = strings.ToLower(strings.TrimSpace(search))

	visible := make([]storedTweet, 0, len(s.tweets))
	for _, st := range s.tweets {
		if now.Sub(st.createdAt) < s.feedDelay {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(st.tweet.Content), search) {
			continue
		}
		visible = append(visible, st)
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].seq > visible[j].seq
	})

	feed := make([]model.Tweet, 0, len(visible))
	for _, st := range visible {
		feed = append(feed, st.tweet)
	}

	return feed
}
