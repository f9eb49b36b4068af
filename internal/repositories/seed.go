package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nstapp/content-library/internal/models"
)

// LoadSeedFile stores every record of a JSON object file ({"key": record, ...}) through the repository.
//
// Returns the number of records written.
func (r *contentRepository) LoadSeedFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var records map[string]models.ContentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	count := 0
	for key, record := range records {
		if err := r.Put(ctx, key, &record); err != nil {
			return count, fmt.Errorf("failed to seed %s: %w", key, err)
		}
		count++
	}

	return count, nil
}
