// Package repository provides data access for the news board dataset. Each
// repository pairs an interface with a PostgreSQL implementation over the
// shared connection pool; existence checks live here as EXISTS queries so
// the service layer can guard mutations without fetching whole rows.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"newsboard/internal/constants"
	"newsboard/internal/database"
	"newsboard/internal/models"
	"newsboard/internal/utils"
)

// ArticleRepository defines methods for interacting with article data
type ArticleRepository interface {
	GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error)
	List(ctx context.Context, q ArticleListQuery) ([]models.ArticleSummary, error)
	Create(ctx context.Context, article *models.Article) error
	IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// PostgresArticleRepository is a PostgreSQL implementation of ArticleRepository
type PostgresArticleRepository struct {
	db *database.Pool
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *database.Pool) ArticleRepository {
	return &PostgresArticleRepository{
		db: db,
	}
}

// GetByID retrieves an article by ID together with its live comment count,
// using the same join-and-aggregate shape as the listing query.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id int64) (*models.ArticleWithCount, error) {
	startTime := time.Now()

	query := `
        SELECT
            articles.article_id,
            articles.title,
            articles.topic,
            articles.author,
            articles.body,
            articles.created_at,
            articles.votes,
            articles.article_img_url,
            COUNT(comments.comment_id)::INT AS comment_count
        FROM articles
        LEFT JOIN comments ON articles.article_id = comments.article_id
        WHERE articles.article_id = $1
        GROUP BY articles.article_id
    `

	article := &models.ArticleWithCount{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
	)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgArticleNotFound)
		}
		return nil, fmt.Errorf("failed to get article by ID: %w", err)
	}

	return article, nil
}

// List retrieves article summaries shaped by the given listing query.
func (r *PostgresArticleRepository) List(ctx context.Context, q ArticleListQuery) ([]models.ArticleSummary, error) {
	startTime := time.Now()

	query, args := BuildArticleListQuery(q)

	rows, err := r.db.QueryContext(ctx, query, args...)

	utils.LogDBQuery(query, args, time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	articles := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var a models.ArticleSummary
		if err := rows.Scan(
			&a.ArticleID,
			&a.Title,
			&a.Topic,
			&a.Author,
			&a.CreatedAt,
			&a.Votes,
			&a.ArticleImgURL,
			&a.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read article rows: %w", err)
	}

	return articles, nil
}

// Create inserts a new article. The id, timestamp and vote count are
// assigned by the database and written back into the model.
func (r *PostgresArticleRepository) Create(ctx context.Context, article *models.Article) error {
	startTime := time.Now()

	query := `
        INSERT INTO articles (title, topic, author, body, article_img_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING article_id, created_at, votes
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		article.Title,
		article.Topic,
		article.Author,
		article.Body,
		article.ArticleImgURL,
	).Scan(&article.ArticleID, &article.CreatedAt, &article.Votes)

	utils.LogDBQuery(
		query,
		[]interface{}{article.Title, article.Topic, article.Author, article.Body, article.ArticleImgURL},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	log.Info().
		Int64("article_id", article.ArticleID).
		Str("author", article.Author).
		Str("topic", article.Topic).
		Msg("Article created")

	return nil
}

// IncrementVotes applies a vote delta as a single atomic increment. The
// update never reads votes first, so concurrent deltas cannot lose updates.
func (r *PostgresArticleRepository) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	startTime := time.Now()

	query := `
        UPDATE articles
        SET votes = votes + $1
        WHERE article_id = $2
        RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
    `

	article := &models.Article{}
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
	)

	utils.LogDBQuery(query, []interface{}{delta, id}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgArticleNotFound)
		}
		return nil, fmt.Errorf("failed to update article votes: %w", err)
	}

	log.Info().
		Int64("article_id", id).
		Int("delta", delta).
		Int("votes", article.Votes).
		Msg("Article votes updated")

	return article, nil
}

// Exists checks if an article with the given id exists
func (r *PostgresArticleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	startTime := time.Now()

	query := `SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		return false, fmt.Errorf("failed to check if article exists: %w", err)
	}

	return exists, nil
}
