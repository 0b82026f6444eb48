package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/pixel-muncher/internal/core"
)

var _ core.KeyValue = (*Store)(nil)

// Get returns the value stored under key and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// GetInt returns an integer stored under key. A value that is not an
// integer is reported as an error; callers decide the fallback.
func (s *Store) GetInt(key string) (int, bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, true, fmt.Errorf("storage: %q is not an integer: %w", key, err)
	}
	return v, true, nil
}

// SetInt stores an integer under key.
func (s *Store) SetInt(key string, value int) error {
	return s.Set(key, strconv.Itoa(value))
}

// RaiseInt writes value under key when the key is absent or holds a
// smaller integer. A stored value that is not an integer counts as 0.
// The comparison and the write are one statement, so concurrent callers
// cannot lower the value.
func (s *Store) RaiseInt(key string, value int) (int, bool, error) {
	var raw string
	err := s.db.QueryRow(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		 WHERE CAST(kv.value AS INTEGER) < CAST(excluded.value AS INTEGER)
		 RETURNING value`,
		key, strconv.Itoa(value),
	).Scan(&raw)
	switch {
	case err == nil:
		return value, true, nil
	case !errors.Is(err, sql.ErrNoRows):
		return 0, false, fmt.Errorf("storage: cannot raise %q: %w", key, err)
	}

	// Not raised: report what is there now.
	stored, _, err := s.GetInt(key)
	if err != nil {
		return 0, false, err
	}
	return stored, false, nil
}

// Delete removes key. Removing a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}
