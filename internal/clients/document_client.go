package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/nstapp/content-library/internal/models"
)

// DocumentClient reads chapter content documents from the remote document store
type DocumentClient struct {
	client   *resty.Client
	validate *validator.Validate
}

// NewDocumentClient creates a document store client. A zero timeout means no timeout.
func NewDocumentClient(baseURL string, timeout time.Duration) *DocumentClient {
	return &DocumentClient{
		client:   newRestyClient(baseURL, timeout),
		validate: validator.New(),
	}
}

// GetChapterData retrieves the content document stored under key.
//
// A missing document (404 or a JSON null body) returns nil without error.
// A document that fails validation returns ErrContentInvalid.
func (c *DocumentClient) GetChapterData(ctx context.Context, key string) (*models.ContentRecord, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		Get("/documents/{key}")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chapter document: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("document store returned status %d", resp.StatusCode())
	}

	var record *models.ContentRecord
	if err := json.Unmarshal(resp.Body(), &record); err != nil {
		return nil, fmt.Errorf("failed to decode chapter document: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	if err := c.validate.Struct(record); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrContentInvalid, err)
	}

	return record, nil
}
