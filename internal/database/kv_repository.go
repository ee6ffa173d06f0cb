package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// KeyValueRepository stores one learner's key-value pairs in the kv_store table
type KeyValueRepository struct {
	db      *sqlx.DB
	learner string
}

// NewKeyValueRepository creates a repository scoped to learner
func NewKeyValueRepository(db *sqlx.DB, learner string) *KeyValueRepository {
	return &KeyValueRepository{db: db, learner: learner}
}

// Get returns the value stored under key
func (r *KeyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := r.db.Rebind("SELECT store_value FROM kv_store WHERE learner = ? AND store_key = ?")
	err := r.db.GetContext(ctx, &value, query, r.learner, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

// Set creates or replaces the value under key
func (r *KeyValueRepository) Set(ctx context.Context, key, value string) error {
	var query string
	if r.db.DriverName() == "mysql" {
		query = `
			INSERT INTO kv_store (learner, store_key, store_value, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON DUPLICATE KEY UPDATE
				store_value = VALUES(store_value),
				updated_at = CURRENT_TIMESTAMP
		`
	} else {
		// SQLite and Postgres share the ON CONFLICT syntax
		query = `
			INSERT INTO kv_store (learner, store_key, store_value, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (learner, store_key) DO UPDATE SET
				store_value = excluded.store_value,
				updated_at = CURRENT_TIMESTAMP
		`
	}

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), r.learner, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (r *KeyValueRepository) Remove(ctx context.Context, key string) error {
	query := r.db.Rebind("DELETE FROM kv_store WHERE learner = ? AND store_key = ?")
	if _, err := r.db.ExecContext(ctx, query, r.learner, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// Learners returns every learner that has stored anything, in name order
func Learners(ctx context.Context, db *sqlx.DB) ([]string, error) {
	var learners []string
	err := db.SelectContext(ctx, &learners, "SELECT DISTINCT learner FROM kv_store ORDER BY learner")
	if err != nil {
		return nil, fmt.Errorf("failed to list learners: %w", err)
	}
	return learners, nil
}
