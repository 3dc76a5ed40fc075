package models

import (
	"time"
)

// Article represents a stored article row. The article_id and created_at are
// server-assigned; votes may go negative.
type Article struct {
	ArticleID     int64     `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
}

// TableName returns the database table name for the Article model.
func (a *Article) TableName() string {
	return "articles"
}

// ArticleWithCount is an Article enriched with its live comment count.
// The count is recomputed on every read, never stored.
type ArticleWithCount struct {
	Article
	CommentCount int `json:"comment_count" db:"comment_count"`
}

// ArticleSummary is the listing projection of an article: every article
// field except the body, plus the comment count aggregate.
type ArticleSummary struct {
	ArticleID     int64     `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// NewArticle represents the payload for creating an article. The image URL
// is optional and defaults to a fixed placeholder when omitted.
type NewArticle struct {
	Author        string `json:"author" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Topic         string `json:"topic" validate:"required"`
	ArticleImgURL string `json:"article_img_url" validate:"omitempty"`
}

// VoteUpdate represents a delta-based votes mutation. IncVotes is a pointer
// so a missing or null field is distinguishable from an explicit zero.
type VoteUpdate struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}
