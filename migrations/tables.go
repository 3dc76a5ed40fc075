package migrations

import (
	"context"
	"database/sql"
)

// GetMigrations returns all migrations in dependency order. Topics and users
// carry no foreign keys and come first; articles reference both; comments
// reference articles and users.
//
// Returns:
//   - []Migration: A slice of all migrations to be applied
func GetMigrations() []Migration {
	return []Migration{
		createTopicsTable(),
		createUsersTable(),
		createArticlesTable(),
		createCommentsTable(),
	}
}

// createTopicsTable creates the topics table.
// Topics are identified by their slug; articles reference them by slug.
//
// Returns:
//   - Migration: A migration that creates the topics table
func createTopicsTable() Migration {
	return Migration{
		Name:        "create_topics_table",
		Description: "Creates the topics table",
		TableName:   "topics",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS topics (
					slug TEXT PRIMARY KEY,
					description TEXT NOT NULL
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createUsersTable creates the users table.
// Usernames are the primary key; articles and comments reference them.
//
// Returns:
//   - Migration: A migration that creates the users table
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   "users",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS users (
					username TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					avatar_url TEXT
				)
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createArticlesTable creates the articles table.
// comment_count is never stored; it is always computed by aggregation over
// the comments table at query time.
//
// Returns:
//   - Migration: A migration that creates the articles table
func createArticlesTable() Migration {
	return Migration{
		Name:        "create_articles_table",
		Description: "Creates the articles table",
		TableName:   "articles",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS articles (
					article_id SERIAL PRIMARY KEY,
					title TEXT NOT NULL,
					topic TEXT NOT NULL REFERENCES topics(slug),
					author TEXT NOT NULL REFERENCES users(username),
					body TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
					votes INT NOT NULL DEFAULT 0,
					article_img_url TEXT NOT NULL DEFAULT 'https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700'
				)
			`
			_, err := tx.ExecContext(ctx, query)
			if err != nil {
				return err
			}

			indexes := []string{
				`CREATE INDEX IF NOT EXISTS idx_articles_topic ON articles(topic)`,
				`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at)`,
			}

			for _, idx := range indexes {
				if _, err = tx.ExecContext(ctx, idx); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// createCommentsTable creates the comments table.
// Comments cascade on article deletion so an article never leaves orphans.
//
// Returns:
//   - Migration: A migration that creates the comments table
func createCommentsTable() Migration {
	return Migration{
		Name:        "create_comments_table",
		Description: "Creates the comments table",
		TableName:   "comments",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS comments (
					comment_id SERIAL PRIMARY KEY,
					article_id INT NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
					author TEXT NOT NULL REFERENCES users(username),
					body TEXT NOT NULL,
					votes INT NOT NULL DEFAULT 0,
					created_at TIMESTAMPTZ NOT NULL DEFAULT now()
				)
			`
			_, err := tx.ExecContext(ctx, query)
			if err != nil {
				return err
			}

			indexes := []string{
				`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
			}

			for _, idx := range indexes {
				if _, err = tx.ExecContext(ctx, idx); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
