package database

import (
	"context"
	"database/sql"
)

// schema is applied on every start; every statement is idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS programs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		program_id TEXT NOT NULL,
		FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		dataset_id TEXT NOT NULL,
		publication_date TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		record_id TEXT NOT NULL,
		category TEXT NOT NULL,
		category_value TEXT NOT NULL,
		count INTEGER NOT NULL CHECK(count >= 0),
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (record_id) REFERENCES records(id) ON DELETE CASCADE,
		UNIQUE(record_id, category, category_value)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_datasets_program ON datasets(program_id)`,
	`CREATE INDEX IF NOT EXISTS idx_records_dataset ON records(dataset_id)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_record ON entries(record_id, position)`,
}

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
