package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simlexx-k/littleX/internal/model"
)

const userKey = "walker_user"

type WalkerStore interface {
	Authenticate(creds model.Credentials) (model.User, string, error)
	UserForToken(token string) (model.User, bool)
	CreateTweet(user model.User, tweet model.NewTweet) (model.Tweet, error)
	Feed(search string) []model.Tweet
}

type WalkerHandler struct {
	store WalkerStore
}

func NewWalkerHandler(store WalkerStore) *WalkerHandler {
	return &WalkerHandler{store: store}
}

func RegisterRoutes(r gin.IRouter, h *WalkerHandler) {
	r.GET("/health", h.GetHealth)
	r.POST("/walker/login_user", h.LoginUser)

	private := r.Group("/walker", h.RequireSession)
	private.POST("/create_tweet", h.CreateTweet)
	private.POST("/load_feed", h.LoadFeed)
}

func (h *WalkerHandler) RequireSession(c *gin.Context) {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
		return
	}

	user, ok := h.store.UserForToken(token)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	c.Set(userKey, user)
	c.Next()
}

func (h *WalkerHandler) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, token, err := h.store.Authenticate(model.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		slog.Warn("login rejected", "email", req.Email, "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, reports(LoginReport{Token: token, User: user}))
}

func (h *WalkerHandler) CreateTweet(c *gin.Context) {
	var req CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	user := c.MustGet(userKey).(model.User)

	tweet, err := h.store.CreateTweet(user, model.NewTweet{Content: req.Content, AIAssisted: req.AIAssisted})
	if err != nil {
		slog.Error("error creating tweet", "error", err, "user_id", user.ID)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports(CreatedTweetReport{ID: tweet.ID, Context: toTweetContext(tweet)}))
}

func (h *WalkerHandler) LoadFeed(c *gin.Context) {
	var req LoadFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	feed := h.store.Feed(req.Search)

	entries := make([]FeedEntry, 0, len(feed))
	for _, t := range feed {
		entries = append(entries, FeedEntry{
			TweetInfo: TweetInfo{ID: t.ID, Context: toTweetContext(t)},
		})
	}

	c.JSON(http.StatusOK, reports(entries...))
}

func (h *WalkerHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
