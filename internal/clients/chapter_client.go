// Package clients contains HTTP clients for the external chapter catalog and content document services.
package clients

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nstapp/content-library/internal/models"
)

// ChapterClient fetches chapter lists from the chapter service
type ChapterClient struct {
	client *resty.Client
}

// NewChapterClient creates a chapter service client. A zero timeout means no timeout.
func NewChapterClient(baseURL string, timeout time.Duration) *ChapterClient {
	return &ChapterClient{
		client: newRestyClient(baseURL, timeout),
	}
}

// FetchChapters retrieves the ordered chapter list of a subject for a curriculum profile
func (c *ChapterClient) FetchChapters(ctx context.Context, profile models.Profile, subject models.Subject, language string) ([]models.Chapter, error) {
	var chapters []models.Chapter

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"board":      profile.Board,
			"classLevel": profile.ClassLevel,
			"stream":     profile.Stream,
			"subject":    subject.Name,
			"language":   language,
		}).
		SetResult(&chapters).
		Get("/chapters")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chapters: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("chapter service returned status %d", resp.StatusCode())
	}

	return chapters, nil
}

func newRestyClient(baseURL string, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}
