package model

import "time"

const DefaultTweetContent = "Hello World! This is a test tweet #test"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NewTweet struct {
	Content    string `json:"content"`
	AIAssisted bool   `json:"ai_assisted"`
}

type Comment struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

type Tweet struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Content    string    `json:"content"`
	AIAssisted bool      `json:"ai_assisted"`
	Likes      []string  `json:"likes"`
	Comments   []Comment `json:"comments"`
	CreatedAt  string    `json:"created_at"`
}

type User struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	RootID          string `json:"root_id"`
	IsActivated     bool   `json:"is_activated"`
	IsAdmin         bool   `json:"is_admin"`
	Expiration      int64  `json:"expiration"`
	ProfileUsername string `json:"profile_username,omitempty"`
}

// Session is held in memory for the lifetime of a run and never refreshed.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

func (s Session) Valid() bool {
	return s.Token != ""
}
