package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. All application state lives in a
// single JSON key-value table; the known keys are owned by internal/kv.
const schema = `
CREATE TABLE IF NOT EXISTS storage (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
