package unlock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	// TaskTypeUnlock is the asynq task type of queued unlock requests
	TaskTypeUnlock = "content:unlock"
	// QueueName is the asynq queue unlock tasks are placed on
	QueueName = "unlock"
)

// Enqueuer is the subset of *asynq.Client used to hand over unlock tasks
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueUnlocker enqueues unlock requests for the unlock worker
type QueueUnlocker struct {
	client Enqueuer
	logger *zap.Logger
}

// NewQueueUnlocker creates a queue-backed unlocker
func NewQueueUnlocker(client Enqueuer, logger *zap.Logger) *QueueUnlocker {
	return &QueueUnlocker{
		client: client,
		logger: logger,
	}
}

// NewUnlockTask builds the asynq task carrying req as JSON payload
func NewUnlockTask(req Request) (*asynq.Task, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode unlock request: %w", err)
	}
	return asynq.NewTask(TaskTypeUnlock, payload), nil
}

// Unlock enqueues the request; success means the task was accepted by the queue
func (u *QueueUnlocker) Unlock(ctx context.Context, req Request) error {
	task, err := NewUnlockTask(req)
	if err != nil {
		return err
	}

	info, err := u.client.EnqueueContext(ctx, task, asynq.Queue(QueueName), asynq.MaxRetry(5))
	if err != nil {
		return fmt.Errorf("failed to enqueue unlock task: %w", err)
	}

	u.logger.Info("unlock task enqueued",
		zap.String("task_id", info.ID),
		zap.String("user_id", req.UserID),
		zap.String("content_id", req.ContentID),
	)
	return nil
}

// TaskHandler processes queued unlock tasks by delivering them to the ledger
type TaskHandler struct {
	target Unlocker
	logger *zap.Logger
}

// Unlocker delivers one unlock request
type Unlocker interface {
	Unlock(ctx context.Context, req Request) error
}

// NewTaskHandler creates a handler delivering tasks through target
func NewTaskHandler(target Unlocker, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		target: target,
		logger: logger,
	}
}

// HandleUnlockTask delivers one content:unlock task. Undecodable payloads are not retried.
func (h *TaskHandler) HandleUnlockTask(ctx context.Context, t *asynq.Task) error {
	var req Request
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.logger.Error("invalid unlock task payload", zap.Error(err))
		return fmt.Errorf("invalid unlock payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.target.Unlock(ctx, req); err != nil {
		return fmt.Errorf("failed to deliver unlock for %s: %w", req.ContentID, err)
	}
	return nil
}
