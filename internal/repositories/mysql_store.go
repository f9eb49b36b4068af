package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type mysqlStore struct {
	db *sql.DB
}

// NewMySQLStore creates a key-value store backed by the content_records table
func NewMySQLStore(db *sql.DB) *mysqlStore {
	return &mysqlStore{
		db: db,
	}
}

// Get retrieves the payload stored under key
func (s *mysqlStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT payload FROM content_records WHERE record_key = ?`

	var payload string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query content record: %w", err)
	}

	return payload, true, nil
}

// Put inserts or replaces the payload stored under key
func (s *mysqlStore) Put(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO content_records (record_key, payload)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload)
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert content record: %w", err)
	}

	return nil
}
