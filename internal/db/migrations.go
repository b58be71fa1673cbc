package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS feed_sources (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  url TEXT NOT NULL UNIQUE,
  kind TEXT NOT NULL DEFAULT 'rss',
  active INTEGER NOT NULL DEFAULT 1,
  poll_interval_minutes INTEGER NOT NULL DEFAULT 60,
  last_polled_at TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feed_sources_active ON feed_sources(active);

CREATE TABLE IF NOT EXISTS fetched_items (
  id INTEGER PRIMARY KEY,
  source_id INTEGER NOT NULL,
  url TEXT NOT NULL UNIQUE,
  original_title TEXT,
  original_body TEXT,
  original_excerpt TEXT,
  original_published_at TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  generated_title TEXT,
  generated_body TEXT,
  generated_excerpt TEXT,
  processed_at TEXT,
  post_id INTEGER,
  fetched_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (source_id) REFERENCES feed_sources(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_fetched_items_status_fetched ON fetched_items(status, fetched_at);
CREATE INDEX IF NOT EXISTS idx_fetched_items_status_processed ON fetched_items(status, processed_at);

CREATE TABLE IF NOT EXISTS publishing_settings (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  auto_publish INTEGER NOT NULL DEFAULT 0,
  daily_quota INTEGER NOT NULL DEFAULT 0,
  default_author_id INTEGER,
  default_category_id INTEGER,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS posts (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  excerpt TEXT,
  body TEXT NOT NULL,
  status TEXT NOT NULL,
  published_at TEXT,
  author_id INTEGER NOT NULL,
  category_id INTEGER NOT NULL,
  metadata TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_posts_published_at ON posts(published_at);

CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: full-text extraction flag on sources
	if err := addColumnIfMissing(db, "feed_sources", "full_text", "INTEGER NOT NULL DEFAULT 0"); err != nil {
		return err
	}

	// Migration 2: last fetch error on sources, cleared on success
	if err := addColumnIfMissing(db, "feed_sources", "error_message", "TEXT"); err != nil {
		return err
	}

	// Migration 3: combine-mode bookkeeping, secondary items point at the item that absorbed them
	if err := addColumnIfMissing(db, "fetched_items", "absorbed_into", "INTEGER"); err != nil {
		return err
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_fetched_items_post_id ON fetched_items(post_id)`); err != nil {
		return fmt.Errorf("create idx_fetched_items_post_id: %w", err)
	}

	return nil
}

func addColumnIfMissing(db *sql.DB, table, column, definition string) error {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`,
		table, column,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("check %s.%s column: %w", table, column, err)
	}
	if count > 0 {
		return nil
	}
	if _, err := db.Exec(fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, definition)); err != nil {
		return fmt.Errorf("add %s.%s column: %w", table, column, err)
	}
	return nil
}
