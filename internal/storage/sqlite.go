package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore persists slots as JSON blobs in a single SQLite table.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteStore opens (creating if needed) the backing database file and
// ensures the state table exists.
func NewSQLiteStore(path string, logger zerolog.Logger) (*SQLiteStore, error) {
	if path == "" {
		path = "curio-box.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		slot TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &SQLiteStore{
		db:     db,
		logger: logger.With().Str("component", "sqlite-storage").Logger(),
	}, nil
}

// Load reads a slot's JSON payload into out. A missing row or a payload that
// fails to decode both report (false, nil): malformed persisted data is
// treated the same as absent data.
func (s *SQLiteStore) Load(ctx context.Context, slot string, out any) (bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE slot = ?`, slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select slot %s: %w", slot, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		s.logger.Warn().Err(err).Str("slot", slot).Msg("discarding malformed slot payload")
		return false, nil
	}
	return true, nil
}

// Save upserts the slot's payload.
func (s *SQLiteStore) Save(ctx context.Context, slot string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO state(slot, payload) VALUES(?, ?) ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload`,
		slot, payload); err != nil {
		return fmt.Errorf("upsert slot %s: %w", slot, err)
	}
	return nil
}

// Clear removes the slot's row.
func (s *SQLiteStore) Clear(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	return nil
}

// Close closes the backing database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
