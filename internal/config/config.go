// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Content store backends
const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
	StoreRedis  = "redis"
)

// Unlock delivery modes
const (
	UnlockWebhook = "webhook"
	UnlockQueue   = "queue"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Content  ContentConfig
	Unlock   UnlockConfig
	Library  LibraryConfig
	APIKey   string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// ContentConfig holds the content store and remote service settings
type ContentConfig struct {
	Store             string
	SeedFile          string
	ChapterServiceURL string
	DocumentURL       string
	HTTPTimeout       time.Duration
	Language          string
}

// UnlockConfig holds the unlock delivery settings
type UnlockConfig struct {
	Mode       string
	WebhookURL string
}

// LibraryConfig holds library session settings
type LibraryConfig struct {
	DefaultBoard      string
	DefaultClassLevel string
	DefaultStream     string
	SessionTTL        time.Duration
	SweepSchedule     string
}

// Load reads configuration from environment variables. A .env file is loaded when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey: os.Getenv("API_KEY"),
	}
	var err error

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}

	// Logging configuration
	cfg.Logging.Level = stringEnv("LOG_LEVEL", "info")

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Content configuration
	cfg.Content.Store = stringEnv("CONTENT_STORE", StoreMemory)
	cfg.Content.SeedFile = os.Getenv("CONTENT_SEED_FILE")
	cfg.Content.Language = stringEnv("CONTENT_LANGUAGE", "English")

	cfg.Content.ChapterServiceURL = os.Getenv("CHAPTER_SERVICE_URL")
	if cfg.Content.ChapterServiceURL == "" {
		return nil, fmt.Errorf("CHAPTER_SERVICE_URL is required")
	}
	cfg.Content.DocumentURL = os.Getenv("CONTENT_DOCUMENT_URL")
	if cfg.Content.DocumentURL == "" {
		return nil, fmt.Errorf("CONTENT_DOCUMENT_URL is required")
	}
	if cfg.Content.HTTPTimeout, err = durationEnv("HTTP_CLIENT_TIMEOUT", 0); err != nil {
		return nil, err
	}

	switch cfg.Content.Store {
	case StoreMemory:
	case StoreMySQL:
		if err := loadDatabase(cfg); err != nil {
			return nil, err
		}
	case StoreRedis:
	default:
		return nil, fmt.Errorf("invalid CONTENT_STORE %q", cfg.Content.Store)
	}

	// Unlock configuration
	cfg.Unlock.Mode = stringEnv("UNLOCK_MODE", UnlockWebhook)
	cfg.Unlock.WebhookURL = os.Getenv("UNLOCK_WEBHOOK_URL")
	switch cfg.Unlock.Mode {
	case UnlockWebhook:
		if cfg.Unlock.WebhookURL == "" {
			return nil, fmt.Errorf("UNLOCK_WEBHOOK_URL is required for webhook unlock mode")
		}
	case UnlockQueue:
	default:
		return nil, fmt.Errorf("invalid UNLOCK_MODE %q", cfg.Unlock.Mode)
	}

	if cfg.Content.Store == StoreRedis || cfg.Unlock.Mode == UnlockQueue {
		if err := loadRedis(cfg); err != nil {
			return nil, err
		}
	}

	// Library configuration
	cfg.Library.DefaultBoard = stringEnv("DEFAULT_BOARD", "CBSE")
	cfg.Library.DefaultClassLevel = stringEnv("DEFAULT_CLASS_LEVEL", "10")
	cfg.Library.DefaultStream = stringEnv("DEFAULT_STREAM", "Science")
	cfg.Library.SweepSchedule = stringEnv("SESSION_SWEEP_SCHEDULE", "@every 1m")
	if cfg.Library.SessionTTL, err = durationEnv("SESSION_TTL", 2*time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWorker reads the configuration of the unlock worker: Redis, logging and the ledger webhook
func LoadWorker() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey: os.Getenv("API_KEY"),
	}
	cfg.Logging.Level = stringEnv("LOG_LEVEL", "info")

	cfg.Unlock.Mode = UnlockQueue
	cfg.Unlock.WebhookURL = os.Getenv("UNLOCK_WEBHOOK_URL")
	if cfg.Unlock.WebhookURL == "" {
		return nil, fmt.Errorf("UNLOCK_WEBHOOK_URL is required")
	}

	var err error
	if cfg.Content.HTTPTimeout, err = durationEnv("HTTP_CLIENT_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if err := loadRedis(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDatabase(cfg *Config) error {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	// Password may be empty for local databases
	cfg.Database.Password = os.Getenv("DB_PASSWORD")

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	return nil
}

func loadRedis(cfg *Config) error {
	var err error
	cfg.Redis.Host = stringEnv("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", 6379); err != nil {
		return err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
		return err
	}
	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the host:port address of Redis
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// parseOrigins splits a comma-separated origin list, allowing all origins when it is empty
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
