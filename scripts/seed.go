// Package scripts provides utility scripts for database and system management.
//
// This package implements database seeding functionality to populate a sample
// dataset for development environments. The seeding system works similarly to
// migrations, tracking executed seeds to ensure they only run once, making the
// process idempotent and safe to run on both new and existing databases.
package scripts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"newsboard/internal/database"
)

// Seeder handles database seeding.
// It provides methods to run seeds that populate the database
// with sample development data.
type Seeder struct {
	db *database.Pool
}

// NewSeeder creates a new seeder.
//
// Parameters:
//   - db: A database connection pool to use for seeding
//
// Returns:
//   - *Seeder: A configured seeder
func NewSeeder(db *database.Pool) *Seeder {
	return &Seeder{
		db: db,
	}
}

// SeedDatabase seeds the database with sample data.
// It creates the seeds tracking table if it doesn't exist, then runs
// all seed functions that haven't been executed yet.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//
// Returns:
//   - error: Any error encountered during seeding, nil if successful
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	log.Info().Msg("Seeding database")
	startTime := time.Now()

	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	executedSeeds, err := s.getExecutedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get executed seeds: %w", err)
	}

	// Each table is a separate seed so a partially seeded database can be
	// completed on the next run.
	seeds := []struct {
		Name     string
		SeedFunc func(ctx context.Context, tx *sql.Tx) error
	}{
		{"topics", s.seedTopics},
		{"users", s.seedUsers},
		{"articles", s.seedArticles},
		{"comments", s.seedComments},
	}

	for _, seed := range seeds {
		if !executedSeeds[seed.Name] {
			log.Info().Str("seed", seed.Name).Msg("Running seed")
			if err := s.runSeed(ctx, seed.Name, seed.SeedFunc); err != nil {
				return err
			}
		} else {
			log.Debug().Str("seed", seed.Name).Msg("Seed already executed")
		}
	}

	log.Info().
		Dur("duration", time.Since(startTime)).
		Msg("Database seeding completed")

	return nil
}

// createSeedsTable creates the seeds table if it doesn't exist.
// This table tracks which seed operations have been executed. As with the
// migrations table, it is never dropped: the history keeps reruns idempotent.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//
// Returns:
//   - error: Any error encountered during table creation, nil if successful
func (s *Seeder) createSeedsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS seeds (
			name VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// getExecutedSeeds returns a map of executed seeds.
// The map keys are seed names and values are always true.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//
// Returns:
//   - map[string]bool: A map containing names of executed seeds
//   - error: Any error encountered while retrieving seeds, nil if successful
func (s *Seeder) getExecutedSeeds(ctx context.Context) (map[string]bool, error) {
	query := `SELECT name FROM seeds`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	seeds := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		seeds[name] = true
	}

	return seeds, rows.Err()
}

// runSeed runs a seed function within a transaction.
// If the seed operation fails, the transaction is rolled back.
//
// Parameters:
//   - ctx: Context for database operations and cancellation
//   - name: The name of the seed operation
//   - seedFunc: The function that performs the seeding
//
// Returns:
//   - error: Any error encountered during seeding, nil if successful
func (s *Seeder) runSeed(ctx context.Context, name string, seedFunc func(ctx context.Context, tx *sql.Tx) error) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := seedFunc(ctx, tx); err != nil {
			return fmt.Errorf("seed %s failed: %w", name, err)
		}

		query := `INSERT INTO seeds (name) VALUES ($1)`
		_, err := tx.ExecContext(ctx, query, name)
		if err != nil {
			return fmt.Errorf("failed to record seed: %w", err)
		}

		return nil
	})
}

// tableIsEmpty reports whether a seeded table currently has no rows.
// Seeds never overwrite data the developer has already put in place.
func (s *Seeder) tableIsEmpty(ctx context.Context, tx *sql.Tx, table string) (bool, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)
	if err := tx.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count == 0, nil
}

// seedTopics populates the topics table with the sample topics.
func (s *Seeder) seedTopics(ctx context.Context, tx *sql.Tx) error {
	empty, err := s.tableIsEmpty(ctx, tx, "topics")
	if err != nil {
		return err
	}
	if !empty {
		log.Info().Msg("Topics table already populated, skipping seed")
		return nil
	}

	topics := []struct {
		Slug        string
		Description string
	}{
		{"mitch", "The man, the Mitch, the legend"},
		{"cats", "Not dogs"},
		{"paper", "what books are made of"},
	}

	query := `INSERT INTO topics (slug, description) VALUES ($1, $2)`
	for _, topic := range topics {
		if _, err := tx.ExecContext(ctx, query, topic.Slug, topic.Description); err != nil {
			return fmt.Errorf("failed to insert topic %s: %w", topic.Slug, err)
		}
	}

	return nil
}

// seedUsers populates the users table with the sample users.
func (s *Seeder) seedUsers(ctx context.Context, tx *sql.Tx) error {
	empty, err := s.tableIsEmpty(ctx, tx, "users")
	if err != nil {
		return err
	}
	if !empty {
		log.Info().Msg("Users table already populated, skipping seed")
		return nil
	}

	users := []struct {
		Username  string
		Name      string
		AvatarURL string
	}{
		{"butter_bridge", "jonny", "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{"icellusedkars", "sam", "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{"rogersop", "paul", "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{"lurker", "do_nothing", "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	}

	query := `INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`
	for _, user := range users {
		if _, err := tx.ExecContext(ctx, query, user.Username, user.Name, user.AvatarURL); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", user.Username, err)
		}
	}

	return nil
}

// seedArticles populates the articles table with the sample articles.
func (s *Seeder) seedArticles(ctx context.Context, tx *sql.Tx) error {
	empty, err := s.tableIsEmpty(ctx, tx, "articles")
	if err != nil {
		return err
	}
	if !empty {
		log.Info().Msg("Articles table already populated, skipping seed")
		return nil
	}

	articles := []struct {
		Title  string
		Topic  string
		Author string
		Body   string
		Votes  int
	}{
		{"Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", 100},
		{"Sony Vaio; or, The Laptop", "mitch", "icellusedkars", "Call me Mitchell. Some years ago..", 0},
		{"Eight pug gifs that remind me of mitch", "mitch", "icellusedkars", "some gifs", 0},
		{"Student SUES Mitch!", "mitch", "rogersop", "We all love Mitch and his wonderful, unique typing style.", 0},
		{"UNCOVERED: catspiracy to bring down democracy", "cats", "rogersop", "Bastet walks amongst us, and the cats are taking arms!", 0},
	}

	query := `
		INSERT INTO articles (title, topic, author, body, votes)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, article := range articles {
		if _, err := tx.ExecContext(ctx, query, article.Title, article.Topic, article.Author, article.Body, article.Votes); err != nil {
			return fmt.Errorf("failed to insert article %q: %w", article.Title, err)
		}
	}

	return nil
}

// seedComments populates the comments table with the sample comments.
// Articles are looked up by title because comment fixtures cannot assume
// which ids the articles table assigned.
func (s *Seeder) seedComments(ctx context.Context, tx *sql.Tx) error {
	empty, err := s.tableIsEmpty(ctx, tx, "comments")
	if err != nil {
		return err
	}
	if !empty {
		log.Info().Msg("Comments table already populated, skipping seed")
		return nil
	}

	comments := []struct {
		ArticleTitle string
		Author       string
		Body         string
		Votes        int
	}{
		{"Living in the shadow of a great man", "butter_bridge", "Oh, I've got compassion running out of my nose, pal! I'm the Mitch of the group.", 16},
		{"Living in the shadow of a great man", "icellusedkars", "I hate streaming noses", 0},
		{"Living in the shadow of a great man", "butter_bridge", "This morning, I showered for nine minutes.", 16},
		{"Sony Vaio; or, The Laptop", "icellusedkars", "Fruit pastilles", 0},
		{"UNCOVERED: catspiracy to bring down democracy", "rogersop", "The owls are not what they seem.", 20},
	}

	query := `
		INSERT INTO comments (article_id, author, body, votes)
		SELECT article_id, $2, $3, $4 FROM articles WHERE title = $1
	`
	for _, comment := range comments {
		if _, err := tx.ExecContext(ctx, query, comment.ArticleTitle, comment.Author, comment.Body, comment.Votes); err != nil {
			return fmt.Errorf("failed to insert comment on %q: %w", comment.ArticleTitle, err)
		}
	}

	return nil
}
