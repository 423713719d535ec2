package walker

import (
	"encoding/json"
	"strconv"

	"github.com/simlexx-k/littleX/internal/model"
)

// reportEnvelope is the {"reports": [[...]]} wrapper every walker returns.
type reportEnvelope[T any] struct {
	Reports [][]T `json:"reports"`
}

func (e reportEnvelope[T]) first() ([]T, bool) {
	if len(e.Reports) == 0 {
		return nil, false
	}
	return e.Reports[0], true
}

type loginReport struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// userExpiry reads user.expiration, in seconds or milliseconds.
func (r loginReport) userExpiry() (float64, bool) {
	if len(r.User) == 0 {
		return 0, false
	}

	var user struct {
		Expiration float64 `json:"expiration"`
	}
	if err := json.Unmarshal(r.User, &user); err != nil || user.Expiration == 0 {
		return 0, false
	}

	return user.Expiration, true
}

type createdReport struct {
	ID      json.RawMessage `json:"id"`
	Context tweetWire       `json:"context"`
}

type feedItem struct {
	TweetInfo struct {
		Context tweetWire `json:"context"`
	} `json:"Tweet_Info"`
}

// decodeFeedItem never fails: an envelope that does not have the expected
// shape becomes an empty tweet so the feed keeps one entry per envelope.
func decodeFeedItem(raw json.RawMessage) model.Tweet {
	var item feedItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return tweetWire{}.toTweet()
	}
	return item.TweetInfo.Context.toTweet()
}

// tweetWire keeps every field raw so one odd value does not fail the record.
type tweetWire struct {
	ID         json.RawMessage `json:"id"`
	Username   json.RawMessage `json:"username"`
	Content    json.RawMessage `json:"content"`
	AIAssisted json.RawMessage `json:"ai_assisted"`
	Likes      json.RawMessage `json:"likes"`
	Comments   json.RawMessage `json:"comments"`
	CreatedAt  json.RawMessage `json:"created_at"`
}

func (w tweetWire) toTweet() model.Tweet {
	t := model.Tweet{
		ID:         rawString(w.ID),
		Username:   rawString(w.Username),
		Content:    rawString(w.Content),
		AIAssisted: rawBool(w.AIAssisted),
		Likes:      []string{},
		Comments:   []model.Comment{},
		CreatedAt:  rawString(w.CreatedAt),
	}

	if len(w.Likes) > 0 {
		var likes []string
		if err := json.Unmarshal(w.Likes, &likes); err == nil && likes != nil {
			t.Likes = likes
		}
	}

	if len(w.Comments) > 0 {
		var comments []model.Comment
		if err := json.Unmarshal(w.Comments, &comments); err == nil && comments != nil {
			t.Comments = comments
		}
	}

	return t
}

// rawString returns strings as-is and any other JSON value as its literal text.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

func rawBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}

	parsed, err := strconv.ParseBool(rawString(raw))
	return err == nil && parsed
}
