package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nstapp/content-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingStore is a KeyValueStore whose reads and writes always fail
type failingStore struct {
	err error
}

func (s *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, s.err
}

func (s *failingStore) Put(ctx context.Context, key, value string) error {
	return s.err
}

func setupContentRepository(t *testing.T, values map[string]string) *contentRepository {
	t.Helper()
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	store := NewMemoryStore()
	for k, v := range values {
		require.NoError(t, store.Put(context.Background(), k, v))
	}

	return NewContentRepository(store, logger)
}

func TestNewContentRepository(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	store := NewMemoryStore()

	repo := NewContentRepository(store, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, store, repo.store)
	assert.Equal(t, logger, repo.logger)
	assert.NotNil(t, repo.validate)
}

func TestContentRepository_Get(t *testing.T) {
	tests := []struct {
		name         string
		stored       map[string]string
		key          string
		expectedErr  error
		validateFunc func(*testing.T, *models.ContentRecord)
	}{
		{
			name:   "success full record",
			stored: map[string]string{"k": `{"price":30,"manualMcqData":[{"question":"2+2?","options":["3","4"],"correctAnswer":1,"explanation":"basic"}],"freeLink":"https://cdn/free.pdf","premiumVideoLink":"https://v/p"}`},
			key:    "k",
			validateFunc: func(t *testing.T, r *models.ContentRecord) {
				assert.Equal(t, 30, r.Price)
				require.Len(t, r.ManualMcqData, 1)
				assert.Equal(t, 1, r.ManualMcqData[0].CorrectAnswer)
				assert.Equal(t, "https://cdn/free.pdf", r.FreeLink)
				assert.Equal(t, "https://v/p", r.PremiumVideoLink)
			},
		},
		{
			name:   "absent price means free",
			stored: map[string]string{"k": `{"freeLink":"https://cdn/free.pdf"}`},
			key:    "k",
			validateFunc: func(t *testing.T, r *models.ContentRecord) {
				assert.Equal(t, 0, r.Price)
			},
		},
		{
			name:        "missing key",
			stored:      map[string]string{},
			key:         "k",
			expectedErr: models.ErrContentNotFound,
		},
		{
			name:        "empty value",
			stored:      map[string]string{"k": ""},
			key:         "k",
			expectedErr: models.ErrContentNotFound,
		},
		{
			name:        "malformed json",
			stored:      map[string]string{"k": `{"price":30,`},
			key:         "k",
			expectedErr: models.ErrContentInvalid,
		},
		{
			name:        "wrong price type",
			stored:      map[string]string{"k": `{"price":"thirty"}`},
			key:         "k",
			expectedErr: models.ErrContentInvalid,
		},
		{
			name:        "negative price",
			stored:      map[string]string{"k": `{"price":-5}`},
			key:         "k",
			expectedErr: models.ErrContentInvalid,
		},
		{
			name:        "answer index out of range",
			stored:      map[string]string{"k": `{"manualMcqData":[{"question":"q","options":["a","b"],"correctAnswer":2}]}`},
			key:         "k",
			expectedErr: models.ErrContentInvalid,
		},
		{
			name:        "question without options",
			stored:      map[string]string{"k": `{"manualMcqData":[{"question":"q","options":[],"correctAnswer":0}]}`},
			key:         "k",
			expectedErr: models.ErrContentInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupContentRepository(t, tt.stored)

			record, err := repo.Get(context.Background(), tt.key)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, record)
			} else {
				require.NoError(t, err)
				require.NotNil(t, record)
				tt.validateFunc(t, record)
			}
		})
	}
}

func TestContentRepository_Get_StoreError(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	repo := NewContentRepository(&failingStore{err: errors.New("connection refused")}, logger)

	record, err := repo.Get(context.Background(), "k")

	assert.ErrorIs(t, err, models.ErrContentNotFound)
	assert.Nil(t, record)
}

func TestContentRepository_Put(t *testing.T) {
	t.Run("success round trip", func(t *testing.T) {
		repo := setupContentRepository(t, nil)
		record := &models.ContentRecord{Price: 10, UltraLink: "https://cdn/ultra.pdf"}

		require.NoError(t, repo.Put(context.Background(), "k", record))

		got, err := repo.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("invalid record rejected", func(t *testing.T) {
		repo := setupContentRepository(t, nil)

		err := repo.Put(context.Background(), "k", &models.ContentRecord{Price: -1})

		assert.ErrorIs(t, err, models.ErrContentInvalid)
	})

	t.Run("store error", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		repo := NewContentRepository(&failingStore{err: errors.New("read only")}, logger)

		err := repo.Put(context.Background(), "k", &models.ContentRecord{})

		assert.Error(t, err)
	})
}

func TestContentRepository_LoadSeedFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		path := filepath.Join(dir, "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"nst_content_CBSE_10_Science_c1": {"price": 20, "freeLink": "https://cdn/c1.pdf"},
			"nst_content_CBSE_10_Science_c2": {"price": 0}
		}`), 0o644))
		repo := setupContentRepository(t, nil)

		count, err := repo.LoadSeedFile(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		record, err := repo.Get(context.Background(), "nst_content_CBSE_10_Science_c1")
		require.NoError(t, err)
		assert.Equal(t, 20, record.Price)
	})

	t.Run("missing file", func(t *testing.T) {
		repo := setupContentRepository(t, nil)

		_, err := repo.LoadSeedFile(context.Background(), filepath.Join(dir, "nope.json"))

		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`[1,2`), 0o644))
		repo := setupContentRepository(t, nil)

		_, err := repo.LoadSeedFile(context.Background(), path)

		assert.Error(t, err)
	})
}
