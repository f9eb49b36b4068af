package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/nstapp/content-library/internal/config"
	"github.com/nstapp/content-library/internal/logger"
	"github.com/nstapp/content-library/internal/unlock"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWorker()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Unlock Worker")

	// Create Asynq server
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Queues: map[string]int{
				unlock.QueueName: 1,
			},
			Logger: logger.Logger.Sugar(),
		},
	)

	// Deliver queued unlocks to the ledger webhook
	webhook := unlock.NewWebhookUnlocker(cfg.Unlock.WebhookURL, cfg.APIKey, cfg.Content.HTTPTimeout, logger.Logger)
	handler := unlock.NewTaskHandler(webhook, logger.Logger)

	// Register task handlers
	mux := asynq.NewServeMux()
	mux.HandleFunc(unlock.TaskTypeUnlock, handler.HandleUnlockTask)

	// Start worker
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Logger.Fatal("Failed to start worker", zap.Error(err))
		}
	}()

	logger.Logger.Info("Worker started", zap.String("queue", unlock.QueueName))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down worker...")
	srv.Shutdown()
	logger.Logger.Info("Worker exited")
}
