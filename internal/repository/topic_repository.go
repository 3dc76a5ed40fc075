package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"newsboard/internal/database"
	"newsboard/internal/models"
	"newsboard/internal/utils"
)

// TopicRepository defines methods for interacting with topic data. Topics
// are read-only once seeded; no mutation methods exist.
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

// PostgresTopicRepository is a PostgreSQL implementation of TopicRepository
type PostgresTopicRepository struct {
	db *database.Pool
}

// NewTopicRepository creates a new TopicRepository
func NewTopicRepository(db *database.Pool) TopicRepository {
	return &PostgresTopicRepository{
		db: db,
	}
}

// List retrieves all topics
func (r *PostgresTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	startTime := time.Now()

	query := `SELECT slug, description FROM topics`

	rows, err := r.db.QueryContext(ctx, query)

	utils.LogDBQuery(query, nil, time.Since(startTime), err)

	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	topics := make([]models.Topic, 0)
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan topic row: %w", err)
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read topic rows: %w", err)
	}

	return topics, nil
}

// Exists checks if a topic with the given slug exists
func (r *PostgresTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	startTime := time.Now()

	query := `SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&exists)

	utils.LogDBQuery(query, []interface{}{slug}, time.Since(startTime), err)

	if err != nil {
		return false, fmt.Errorf("failed to check if topic exists: %w", err)
	}

	return exists, nil
}
