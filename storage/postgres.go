package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresStore persists keys in the kv_store table as JSONB. It is the
// production implementation of Store, playing the role the browser's
// localStorage plays for the storefront pages.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a PostgresStore over an open connection.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var _ Store = (*PostgresStore)(nil)

// GetJSON reads the value at key into dest.
func (s *PostgresStore) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, `SELECT value FROM kv_store WHERE key = $1`, key)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read key %q", key)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode value at key %q", key)
	}
	return true, nil
}

// SetJSON writes value at key, replacing any previous value.
func (s *PostgresStore) SetJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode value for key %q", key)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, key, raw)
	if err != nil {
		return errors.Wrapf(err, "failed to write key %q", key)
	}
	return nil
}

// Delete removes the key entirely.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	if err != nil {
		return errors.Wrapf(err, "failed to delete key %q", key)
	}
	return nil
}

// Has reports whether the key exists.
func (s *PostgresStore) Has(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM kv_store WHERE key = $1)`, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check key %q", key)
	}
	return exists, nil
}
