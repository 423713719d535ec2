package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/simlexx-k/littleX/internal/model"
)

type fakeStore struct {
	user       model.User
	token      string
	authErr    error
	tweets     []model.Tweet
	createErr  error
	created    []model.NewTweet
	lastSearch string
}

func (f *fakeStore) Authenticate(creds model.Credentials) (model.User, string, error) {
	if f.authErr != nil {
		return model.User{}, "", f.authErr
	}
	return f.user, f.token, nil
}

func (f *fakeStore) UserForToken(token string) (model.User, bool) {
	return f.user, token == f.token
}

func (f *fakeStore) CreateTweet(user model.User, tweet model.NewTweet) (model.Tweet, error) {
	if f.createErr != nil {
		return model.Tweet{}, f.createErr
	}
	f.created = append(f.created, tweet)
	return model.Tweet{ID: "t-new", Username: user.ProfileUsername, Content: tweet.Content, AIAssisted: tweet.AIAssisted}, nil
}

func (f *fakeStore) Feed(search string) []model.Tweet {
	f.lastSearch = search
	return f.tweets
}

func newTestRouter(store WalkerStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewWalkerHandler(store))
	return r
}

func doPost(r *gin.Engine, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestLoginUser_ReturnsTokenEnvelope(t *testing.T) {
	store := &fakeStore{user: model.User{ID: "u1", Email: "a@b.c"}, token: "tok-1"}
	r := newTestRouter(store)

	w := doPost(r, "/walker/login_user", "", `{"email":"a@b.c","password":"pw"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ReportsResponse[LoginReport]
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Reports))
	assert.Equal(t, "tok-1", res.Reports[0][0].Token)
	assert.Equal(t, "u1", res.Reports[0][0].User.ID)
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	store := &fakeStore{authErr: errors.New("invalid credentials")}
	r := newTestRouter(store)

	w := doPost(r, "/walker/login_user", "", `{"email":"a@b.c","password":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUser_MissingFields(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w := doPost(r, "/walker/login_user", "", `{"email":"a@b.c"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTweet_RequiresSession(t *testing.T) {
	store := &fakeStore{token: "tok-1"}
	r := newTestRouter(store)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "unknown token", token: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doPost(r, "/walker/create_tweet", tt.token, `{"content":"hi"}`)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	assert.Equal(t, 0, len(store.created))
}

func TestCreateTweet_Created(t *testing.T) {
	store := &fakeStore{user: model.User{ID: "u1", ProfileUsername: "alice"}, token: "tok-1"}
	r := newTestRouter(store)

	w := doPost(r, "/walker/create_tweet", "tok-1", `{"content":"Hello World!","ai_assisted":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, len(store.created))
	assert.Equal(t, true, store.created[0].AIAssisted)

	var res ReportsResponse[CreatedTweetReport]
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "t-new", res.Reports[0][0].ID)
	assert.Equal(t, "Hello World!", res.Reports[0][0].Context.Content)
	assert.Equal(t, "alice", res.Reports[0][0].Context.Username)
}

func TestCreateTweet_EmptyContent(t *testing.T) {
	store := &fakeStore{token: "tok-1"}
	r := newTestRouter(store)

	w := doPost(r, "/walker/create_tweet", "tok-1", `{"content":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoadFeed_ReturnsEnvelopes(t *testing.T) {
	store := &fakeStore{
		token: "tok-1",
		tweets: []model.Tweet{
			{ID: "t2", Content: "second", AIAssisted: true},
			{ID: "t1", Content: "first"},
		},
	}
	r := newTestRouter(store)

	w := doPost(r, "/walker/load_feed", "tok-1", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", store.lastSearch)

	var res ReportsResponse[FeedEntry]
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Reports[0]))
	assert.Equal(t, "t2", res.Reports[0][0].TweetInfo.ID)
	assert.Equal(t, "second", res.Reports[0][0].TweetInfo.Context.Content)
	assert.Equal(t, true, res.Reports[0][0].TweetInfo.Context.AIAssisted)
	assert.Equal(t, "first", res.Reports[0][1].TweetInfo.Context.Content)
}

func TestLoadFeed_EmptyFeedKeepsReportList(t *testing.T) {
	store := &fakeStore{token: "tok-1"}
	r := newTestRouter(store)

	w := doPost(r, "/walker/load_feed", "tok-1", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":200,"reports":[[]]}`, w.Body.String())
}

func TestLoadFeed_Search(t *testing.T) {
	store := &fakeStore{token: "tok-1"}
	r := newTestRouter(store)

	w := doPost(r, "/walker/load_feed", "tok-1", `{"search":"#test"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "#test", store.lastSearch)
}

func TestLoadFeed_EmptyBody(t *testing.T) {
	store := &fakeStore{token: "tok-1"}
	r := newTestRouter(store)

	w := doPost(r, "/walker/load_feed", "tok-1", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", res["status"])
}
