package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port string

	DatabaseURL    string
	UseMemoryStore bool
	RunMigrations  bool
	SeedData       bool

	GeminiAPIKey string
	GeminiModel  string
	ChatTimeout  time.Duration

	// Calendar days for streaks are counted in this zone.
	Location *time.Location

	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	MetricsUser string
	MetricsPass string
	PprofSecret string

	LogLevel       string
	LogDevelopment bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	config := &Config{
		Port:           getEnv("PORT", "3333"),
		UseMemoryStore: os.Getenv("USE_MEMORY_STORE") == "true",
		RunMigrations:  getEnv("RUN_MIGRATIONS", "true") == "true",
		SeedData:       getEnv("SEED_DATA", "true") == "true",
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		MetricsUser:    os.Getenv("METRICS_USER"),
		MetricsPass:    os.Getenv("METRICS_PASS"),
		PprofSecret:    os.Getenv("PPROF_SECRET"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogDevelopment: os.Getenv("LOG_DEVELOPMENT") == "true",
	}

	// Database URL (required unless the in-memory store is selected)
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" && !config.UseMemoryStore {
		return nil, fmt.Errorf("DATABASE_URL is required when USE_MEMORY_STORE is not set")
	}

	chatTimeout, err := time.ParseDuration(getEnv("CHAT_TIMEOUT", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_TIMEOUT: %w", err)
	}
	if chatTimeout <= 0 {
		return nil, fmt.Errorf("CHAT_TIMEOUT must be positive")
	}
	config.ChatTimeout = chatTimeout

	tz := getEnv("APP_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
	}
	config.Location = loc

	for _, origin := range strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			config.AllowedOrigins = append(config.AllowedOrigins, origin)
		}
	}

	config.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	config.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	return config, nil
}

// getEnv retrieves environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
