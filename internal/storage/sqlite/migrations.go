package sqlite

import "database/sql"

// schema sets up the key-value table. It runs on startup to ensure the table exists.
// WAL lets a second process (the CLI, another server) read while we write.
const schema = `
PRAGMA journal_mode = WAL;

CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
