// Package kv is the persistence layer: named JSON values stored in a
// SQLite key-value table, mirrored in memory so that reads are
// synchronous after the initial load.
package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// SchemaVersion tags every persisted blob so the part shape can evolve
// safely. Version 0 means a bare legacy payload without an envelope.
const SchemaVersion = 1

// Well-known storage keys.
const (
	KeyParts      = "parts"
	KeyVisibility = "field-visibility"
)

// envelope wraps a persisted value with its schema version.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Store holds the in-memory mirror of the storage table. A write fully
// replaces the prior value for its key; a failed write keeps the
// in-memory value authoritative for the session and logs a warning once
// per key instead of surfacing an error to the UI.
type Store struct {
	db *sql.DB

	mu     sync.Mutex
	values map[string]json.RawMessage
	warned map[string]bool
}

// Open loads all stored values into memory.
func Open(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{
		db:     db,
		values: make(map[string]json.RawMessage),
		warned: make(map[string]bool),
	}

	rows, err := db.QueryContext(ctx, `SELECT key, value FROM storage`)
	if err != nil {
		return nil, fmt.Errorf("loading storage: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning storage row: %w", err)
		}
		s.values[key] = unwrap(json.RawMessage(value))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading storage: %w", err)
	}

	return s, nil
}

// unwrap strips the version envelope from a persisted blob. Bare legacy
// payloads (no envelope) are passed through unchanged.
func unwrap(raw json.RawMessage) json.RawMessage {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Version > 0 && env.Data != nil {
		return env.Data
	}
	return raw
}

// Read unmarshals the value stored under key into target. It returns
// false and leaves target untouched when no value exists; absence is
// never written back.
func (s *Store) Read(key string, target any) bool {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		slog.Error("failed to decode stored value", "key", key, "error", err)
		return false
	}
	return true
}

// Write replaces the value stored under key. The in-memory mirror is
// always updated; persistence failures are logged once per key and not
// returned so a full disk or locked database never crashes the UI.
func (s *Store) Write(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("failed to encode value", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()

	blob, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		slog.Error("failed to encode envelope", "key", key, "error", err)
		return
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(blob),
	)
	if err != nil {
		s.mu.Lock()
		first := !s.warned[key]
		s.warned[key] = true
		s.mu.Unlock()
		if first {
			slog.Warn("failed to persist value, keeping in-memory copy for this session",
				"key", key, "error", err)
		}
	}
}
