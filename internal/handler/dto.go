package handler

import "github.com/simlexx-k/littleX/internal/model"

type ReportsResponse[T any] struct {
	Status  int   `json:"status"`
	Reports [][]T `json:"reports"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginReport struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type CreateTweetRequest struct {
	Content    string `json:"content" binding:"required"`
	AIAssisted bool   `json:"ai_assisted"`
}

type LoadFeedRequest struct {
	Search string `json:"search"`
}

type TweetContext struct {
	Username   string          `json:"username"`
	Content    string          `json:"content"`
	AIAssisted bool            `json:"ai_assisted"`
	Likes      []string        `json:"likes"`
	Comments   []model.Comment `json:"comments"`
	CreatedAt  string          `json:"created_at"`
}

type CreatedTweetReport struct {
	ID      string       `json:"id"`
	Context TweetContext `json:"context"`
}

type TweetInfo struct {
	ID      string       `json:"id"`
	Context TweetContext `json:"context"`
}

type FeedEntry struct {
	TweetInfo TweetInfo `json:"Tweet_Info"`
}

func toTweetContext(t model.Tweet) TweetContext {
	return TweetContext{
		Username:   t.Username,
		Content:    t.Content,
		AIAssisted: t.AIAssisted,
		Likes:      t.Likes,
		Comments:   t.Comments,
		CreatedAt:  t.CreatedAt,
	}
}

func reports[T any](items ...T) ReportsResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ReportsResponse[T]{
		Status:  200,
		Reports: [][]T{items},
	}
}
