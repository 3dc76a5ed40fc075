package handlers

import (
	"context"

	"newsboard/internal/models"
)

// TopicServiceInterface defines the topic operations required by the handlers.
type TopicServiceInterface interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

// ArticleServiceInterface defines the article operations required by the
// handlers.
type ArticleServiceInterface interface {
	ListArticles(ctx context.Context, topic, sortBy, order string, limit, offset int) ([]models.ArticleSummary, error)
	GetArticleByID(ctx context.Context, id int64) (*models.ArticleWithCount, error)
	CreateArticle(ctx context.Context, payload *models.NewArticle) (*models.ArticleWithCount, error)
	UpdateArticleVotes(ctx context.Context, id int64, payload *models.VoteUpdate) (*models.Article, error)
}

// CommentServiceInterface defines the comment operations required by the
// handlers.
type CommentServiceInterface interface {
	ListComments(ctx context.Context, articleID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, articleID int64, payload *models.NewComment) (*models.Comment, error)
	UpdateCommentVotes(ctx context.Context, id int64, payload *models.VoteUpdate) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// UserServiceInterface defines the user operations required by the handlers.
type UserServiceInterface interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.User, error)
}
