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

// CommentRepository defines methods for interacting with comment data
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	IncrementVotes(ctx context.Context, id int64, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// PostgresCommentRepository is a PostgreSQL implementation of CommentRepository
type PostgresCommentRepository struct {
	db *database.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *database.Pool) CommentRepository {
	return &PostgresCommentRepository{
		db: db,
	}
}

// ListByArticle retrieves all comments for an article, newest first.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	startTime := time.Now()

	query := `
        SELECT comment_id, article_id, author, body, votes, created_at
        FROM comments
        WHERE article_id = $1
        ORDER BY created_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query, articleID)

	utils.LogDBQuery(query, []interface{}{articleID}, time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(
			&c.CommentID,
			&c.ArticleID,
			&c.Author,
			&c.Body,
			&c.Votes,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comment rows: %w", err)
	}

	return comments, nil
}

// Create inserts a new comment. The id, timestamp and vote count are
// assigned by the database and written back into the model.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	startTime := time.Now()

	query := `
        INSERT INTO comments (article_id, author, body)
        VALUES ($1, $2, $3)
        RETURNING comment_id, votes, created_at
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		comment.ArticleID,
		comment.Author,
		comment.Body,
	).Scan(&comment.CommentID, &comment.Votes, &comment.CreatedAt)

	utils.LogDBQuery(
		query,
		[]interface{}{comment.ArticleID, comment.Author, comment.Body},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	log.Info().
		Int64("comment_id", comment.CommentID).
		Int64("article_id", comment.ArticleID).
		Str("author", comment.Author).
		Msg("Comment created")

	return nil
}

// IncrementVotes applies a vote delta as a single atomic increment.
func (r *PostgresCommentRepository) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Comment, error) {
	startTime := time.Now()

	query := `
        UPDATE comments
        SET votes = votes + $1
        WHERE comment_id = $2
        RETURNING comment_id, article_id, author, body, votes, created_at
    `

	comment := &models.Comment{}
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&comment.CommentID,
		&comment.ArticleID,
		&comment.Author,
		&comment.Body,
		&comment.Votes,
		&comment.CreatedAt,
	)

	utils.LogDBQuery(query, []interface{}{delta, id}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgCommentNotFound)
		}
		return nil, fmt.Errorf("failed to update comment votes: %w", err)
	}

	log.Info().
		Int64("comment_id", id).
		Int("delta", delta).
		Int("votes", comment.Votes).
		Msg("Comment votes updated")

	return comment, nil
}

// Delete removes a comment by id. A row could have been deleted between an
// earlier existence check and this call; zero affected rows reports not
// found either way.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()

	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, id)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgCommentNotFound)
	}

	log.Info().
		Int64("comment_id", id).
		Msg("Comment deleted")

	return nil
}

// Exists checks if a comment with the given id exists
func (r *PostgresCommentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	startTime := time.Now()

	query := `SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		return false, fmt.Errorf("failed to check if comment exists: %w", err)
	}

	return exists, nil
}
