package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/nstapp/content-library/internal/models"
	"go.uber.org/zap"
)

// KeyValueStore is the interface that wraps access to the content key-value store.
type KeyValueStore interface {
	// Method Get retrieve a raw value stored under "key".
	//
	// The boolean result is false when nothing is stored under the key.
	// An error is returned only when the store itself could not be read.
	Get(ctx context.Context, key string) (string, bool, error)
	// Method Put stores "value" under "key", replacing any previous value.
	Put(ctx context.Context, key, value string) error
}

type contentRepository struct {
	store    KeyValueStore
	validate *validator.Validate
	logger   *zap.Logger
}

// NewContentRepository creates a new content record repository on top of a key-value store
func NewContentRepository(store KeyValueStore, logger *zap.Logger) *contentRepository {
	return &contentRepository{
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

// Get reads the content record stored under key and validates it.
//
// A missing value, an empty value or an unreadable store yields models.ErrContentNotFound.
// Malformed JSON or a record failing validation yields models.ErrContentInvalid.
// Both are logged here so callers can treat them as "no record".
func (r *contentRepository) Get(ctx context.Context, key string) (*models.ContentRecord, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Error("failed to read content record", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to read %s: %w", key, models.ErrContentNotFound)
	}
	if !ok || raw == "" {
		return nil, models.ErrContentNotFound
	}

	record, err := r.Decode(raw)
	if err != nil {
		r.logger.Warn("corrupted content record", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	return record, nil
}

// Put validates record and stores it under key
func (r *contentRepository) Put(ctx context.Context, key string, record *models.ContentRecord) error {
	if err := r.check(record); err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode content record: %w", err)
	}

	if err := r.store.Put(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to store content record: %w", err)
	}

	return nil
}

// Decode parses and validates a JSON-encoded content record
func (r *contentRepository) Decode(raw string) (*models.ContentRecord, error) {
	var record models.ContentRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrContentInvalid, err)
	}

	if err := r.check(&record); err != nil {
		return nil, err
	}

	return &record, nil
}

// check runs the struct validation plus the answer index rule
func (r *contentRepository) check(record *models.ContentRecord) error {
	if err := r.validate.Struct(record); err != nil {
		return fmt.Errorf("%w: %v", models.ErrContentInvalid, err)
	}

	for i, item := range record.ManualMcqData {
		if item.CorrectAnswer >= len(item.Options) {
			return fmt.Errorf("%w: question %d has answer index %d out of %d options",
				models.ErrContentInvalid, i, item.CorrectAnswer, len(item.Options))
		}
	}

	return nil
}
