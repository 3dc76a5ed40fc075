package models

import (
	"time"
)

// Comment represents a stored comment row on an article.
type Comment struct {
	CommentID int64     `json:"comment_id" db:"comment_id"`
	ArticleID int64     `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the database table name for the Comment model.
func (c *Comment) TableName() string {
	return "comments"
}

// NewComment represents the payload for posting a comment on an article.
type NewComment struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}
