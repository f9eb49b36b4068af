package unlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// WebhookUnlocker posts unlock requests to the host's ledger endpoint
type WebhookUnlocker struct {
	client *resty.Client
	url    string
	apiKey string
	logger *zap.Logger
}

// NewWebhookUnlocker creates an unlocker posting to url. apiKey is sent as X-API-Key when set.
func NewWebhookUnlocker(url, apiKey string, timeout time.Duration, logger *zap.Logger) *WebhookUnlocker {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &WebhookUnlocker{
		client: client,
		url:    url,
		apiKey: apiKey,
		logger: logger,
	}
}

// Unlock posts the request and succeeds on any 2xx answer
func (u *WebhookUnlocker) Unlock(ctx context.Context, req Request) error {
	r := u.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req)
	if u.apiKey != "" {
		r.SetHeader("X-API-Key", u.apiKey)
	}

	resp, err := r.Post(u.url)
	if err != nil {
		return fmt.Errorf("failed to post unlock request: %w", err)
	}
	if resp.IsError() {
		u.logger.Warn("ledger rejected unlock request",
			zap.String("content_id", req.ContentID),
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return fmt.Errorf("ledger returned status %d", resp.StatusCode())
	}

	u.logger.Info("unlock request accepted",
		zap.String("user_id", req.UserID),
		zap.String("content_id", req.ContentID),
		zap.Int("cost", req.Cost),
	)
	return nil
}
