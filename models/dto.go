package models

import "time"

// Column length limits enforced at the service boundary before hitting the
// database, so a violation is reported with the field's maximum instead of a
// driver error.
const (
	MaxUsernameLen           = 64
	MaxChannelNameLen        = 32
	MaxChannelDescriptionLen = 255
	MaxArticleTitleLen       = 64
	MaxArticleContentLen     = 65535
	MaxCommentBodyLen        = 255
)

// DefaultFeedLimit caps listings and feeds when the caller does not specify
// a result count.
const DefaultFeedLimit = 20

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateChannelRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

type SubmitArticleRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type PostCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// ArticleSummary is the listing/feed projection of an article.
type ArticleSummary struct {
	ID          uint      `json:"aid"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	PublishTime time.Time `json:"publish_time"`
	Content     string    `json:"content"`
}

type ChannelSummary struct {
	ID          uint   `json:"cid"`
	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Subscribers int64  `json:"subscribers"`
}

type ChannelDetail struct {
	ChannelSummary
	Articles []ArticleSummary `json:"articles"`
}

type CommentView struct {
	ID      uint      `json:"coid"`
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Time    time.Time `json:"time"`
}

// PendingArticle is the moderation-queue projection; it exposes the raw
// status and derived state so reviewers can tell pending from rejected.
type PendingArticle struct {
	ID      uint         `json:"aid"`
	Title   string       `json:"title"`
	Author  string       `json:"author"`
	Channel string       `json:"channel"`
	Status  int          `json:"status"`
	State   ArticleState `json:"-"`
}

// ModerationOutcome reports the result of a state transition. Changed is
// false for the idempotent no-op paths (accepting an already accepted
// article, disabling an already removed channel).
type ModerationOutcome struct {
	Changed bool         `json:"changed"`
	Message string       `json:"message"`
	State   ArticleState `json:"state"`
}
