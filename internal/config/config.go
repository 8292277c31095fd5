package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Logging
	LogLevel string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// History storage: "memory" | "redis" | "postgres" | "file"
	HistoryStore string
	RedisURL     string
	DatabaseURL  string
	HistoryDir   string

	// Frontend
	FrontendURL string

	// Behaviour
	StrictResults         bool
	DiscardStaleResponses bool
	MaxUploadBytes        int

	// Workspaces untouched for this long are forgotten
	WorkspaceIdleTTL time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                  getEnvOrDefault("PORT", "8080"),
		Env:                   getEnvOrDefault("ENV", "development"),
		LogLevel:              getEnvOrDefault("LOG_LEVEL", "info"),
		GeminiAPIKey:          strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		HistoryStore:          strings.ToLower(getEnvOrDefault("HISTORY_STORE", "memory")),
		RedisURL:              getEnvOrDefault("REDIS_URL", ""),
		DatabaseURL:           getEnvOrDefault("DATABASE_URL", ""),
		HistoryDir:            getEnvOrDefault("HISTORY_DIR", defaultHistoryDir()),
		FrontendURL:           getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		StrictResults:         getEnvAsBoolOrDefault("STRICT_RESULTS", false),
		DiscardStaleResponses: getEnvAsBoolOrDefault("DISCARD_STALE_RESPONSES", false),
		MaxUploadBytes:        getEnvAsIntOrDefault("MAX_UPLOAD_BYTES", 10<<20),
		WorkspaceIdleTTL:      time.Duration(getEnvAsIntOrDefault("WORKSPACE_IDLE_TTL_MINUTES", 60)) * time.Minute,
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func defaultHistoryDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".studymate"
	}
	return filepath.Join(dir, "studymate")
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
