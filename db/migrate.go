package db

import (
	"database/sql"
	"fmt"
)

// createTables creates the pending_submissions table if it does not exist.
func createTables(conn *sql.DB) error {
	createPendingSubmissionsTableSQL := `
	CREATE TABLE IF NOT EXISTS pending_submissions (
		message_id TEXT PRIMARY KEY,
		submitter_id TEXT NOT NULL,
		guild_id TEXT NOT NULL DEFAULT '',
		level TEXT NOT NULL,
		completion TEXT NOT NULL,
		framerate TEXT NOT NULL,
		username TEXT NOT NULL,
		tracking_id TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);`

	if _, err := conn.Exec(createPendingSubmissionsTableSQL); err != nil {
		return fmt.Errorf("create pending_submissions table: %w", err)
	}
	return nil
}
