package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Limits holds the per-account conversation quotas enforced by the chat service.
// They are parsed once at startup and injected where needed instead of being
// re-read from the environment at call time.
type Limits struct {
	// MaxTopicsPerAccount is the maximum number of chat topics an account may own.
	MaxTopicsPerAccount int
	// MaxMessagesPerTopic is the maximum number of messages a single topic may hold.
	MaxMessagesPerTopic int
	// MaxFilesPerAccount is the maximum number of file-bearing messages across all
	// of an account's topics.
	MaxFilesPerAccount int
}

// Config holds all configuration for the application.
type Config struct {
	LLMAPIKey          string
	LLMBaseURL         string
	LLMModelName       string
	EmbeddingModelName string

	DBPath string

	QdrantURL           string
	UserDocsCollection  string
	EducationCollection string
	QdrantVectorSize    int

	SerperAPIKey string

	S3Bucket       string
	S3Region       string
	S3AccessKeyID  string
	S3SecretKey    string
	S3Endpoint     string
	S3UsePathStyle bool

	Limits Limits

	APIPort   string
	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded
// automatically. Environment variables already set take precedence over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up to find a .env next to go.mod (limit search depth)
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMAPIKey:          getEnv("LLM_API_KEY", ""),
		LLMBaseURL:         getEnv("LLM_BASE_URL", ""),
		LLMModelName:       getEnv("LLM_MODEL", "gpt-4o-mini"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "text-embedding-3-small"),

		DBPath: getEnv("DB_PATH", "./data/studyhall.db"),

		QdrantURL:           getEnv("QDRANT_URL", "http://localhost:6333"),
		UserDocsCollection:  getEnv("QDRANT_USER_DOCS_COLLECTION", "user_documents"),
		EducationCollection: getEnv("QDRANT_EDUCATION_COLLECTION", "education"),

		SerperAPIKey: getEnv("SERPER_API_KEY", ""),

		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:  getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3UsePathStyle: getEnv("S3_USE_PATH_STYLE", "false") == "true",

		APIPort:   getEnv("API_PORT", "9000"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}

	vectorSize, err := getEnvInt("QDRANT_VECTOR_SIZE", 1536)
	if err != nil {
		return nil, err
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
	}
	cfg.QdrantVectorSize = vectorSize

	if cfg.Limits, err = loadLimits(); err != nil {
		return nil, err
	}

	switch strings.ToLower(getEnv("LOG_LEVEL", "info")) {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		cfg.LogLevel = slog.LevelInfo
	}

	// Create the data directory up front so SQLite can create its file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

func loadLimits() (Limits, error) {
	var l Limits
	var err error
	if l.MaxTopicsPerAccount, err = getEnvInt("MAX_TOPICS_PER_ACCOUNT", 20); err != nil {
		return l, err
	}
	if l.MaxMessagesPerTopic, err = getEnvInt("MAX_MESSAGES_PER_TOPIC", 100); err != nil {
		return l, err
	}
	if l.MaxFilesPerAccount, err = getEnvInt("MAX_FILES_PER_ACCOUNT", 10); err != nil {
		return l, err
	}
	if l.MaxTopicsPerAccount <= 0 || l.MaxMessagesPerTopic <= 0 || l.MaxFilesPerAccount <= 0 {
		return l, fmt.Errorf("quota limits must be greater than 0")
	}
	return l, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}
