package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	_ "github.com/nstapp/content-library/docs"
	"github.com/nstapp/content-library/internal/clients"
	"github.com/nstapp/content-library/internal/config"
	"github.com/nstapp/content-library/internal/handlers"
	"github.com/nstapp/content-library/internal/library"
	"github.com/nstapp/content-library/internal/logger"
	"github.com/nstapp/content-library/internal/middleware"
	"github.com/nstapp/content-library/internal/models"
	"github.com/nstapp/content-library/internal/repositories"
	"github.com/nstapp/content-library/internal/services"
	"github.com/nstapp/content-library/internal/unlock"
	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title NST Content Library API
// @version 1.0
// @description API for the MCQ, PDF and video chapter libraries with credit-based unlocking
// @termsOfService http://swagger.io/terms/

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting NST Content Library",
		zap.String("store", cfg.Content.Store),
		zap.String("unlock_mode", cfg.Unlock.Mode),
	)

	ctx := context.Background()

	// Connect to Redis when the store or the unlock queue needs it
	var rdb *redis.Client
	if cfg.Content.Store == config.StoreRedis || cfg.Unlock.Mode == config.UnlockQueue {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
	}

	// Initialize content store
	var store repositories.KeyValueStore
	switch cfg.Content.Store {
	case config.StoreMySQL:
		db, err := connectDB(cfg.DSN())
		if err != nil {
			logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
			os.Exit(1)
		}
		defer db.Close()

		if err := runMigrations(db); err != nil {
			logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		store = repositories.NewMySQLStore(db)
	case config.StoreRedis:
		store = repositories.NewRedisStore(rdb)
	default:
		store = repositories.NewMemoryStore()
	}
	contentRepo := repositories.NewContentRepository(store, logger.Logger)

	if cfg.Content.SeedFile != "" {
		count, err := contentRepo.LoadSeedFile(ctx, cfg.Content.SeedFile)
		if err != nil {
			logger.Logger.Fatal("Failed to seed content store", zap.Error(err))
		}
		logger.Logger.Info("Content store seeded", zap.Int("records", count))
	}

	// Initialize unlocker
	var unlocker library.Unlocker
	switch cfg.Unlock.Mode {
	case config.UnlockQueue:
		client := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		unlocker = unlock.NewQueueUnlocker(client, logger.Logger)
	default:
		unlocker = unlock.NewWebhookUnlocker(cfg.Unlock.WebhookURL, cfg.APIKey, cfg.Content.HTTPTimeout, logger.Logger)
	}

	// Initialize services
	libraryService := services.NewLibraryService(library.Dependencies{
		Chapters:  clients.NewChapterClient(cfg.Content.ChapterServiceURL, cfg.Content.HTTPTimeout),
		Documents: clients.NewDocumentClient(cfg.Content.DocumentURL, cfg.Content.HTTPTimeout),
		Content:   contentRepo,
		Unlocker:  unlocker,
		Defaults: models.ProfileDefaults{
			Board:      cfg.Library.DefaultBoard,
			ClassLevel: cfg.Library.DefaultClassLevel,
			Stream:     cfg.Library.DefaultStream,
		},
		Language: cfg.Content.Language,
		Logger:   logger.Logger,
	}, cfg.Library.SessionTTL, logger.Logger)
	defer libraryService.Close()

	// Schedule idle session eviction
	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.Library.SweepSchedule, func() { libraryService.EvictIdle() }); err != nil {
		logger.Logger.Fatal("Invalid session sweep schedule", zap.Error(err))
	}
	sweeper.Start()

	// Initialize handlers
	libraryHandler := handlers.NewLibraryHandler(libraryService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger.Logger))
	r.Use(middleware.Recovery(logger.Logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimit(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Register library routes with API key middleware
	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(cfg.APIKey))
		libraryHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Stop the sweeper before tearing down sessions
	<-sweeper.Stop().Done()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "content_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directories if running from cmd
		for _, dir := range []string{"../migrations", "../../migrations"} {
			if _, err := os.Stat(dir); err == nil {
				migrationPath = "file://" + dir
				break
			}
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
