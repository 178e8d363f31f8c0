// Package config loads service configuration from the environment. A .env
// file in the working directory is honored for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Env        string
	ServerHost string
	ServerPort string
	LogLevel   string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Auth configuration
	JWTSecret         string
	AdminPasswordHash string

	// Matching configuration. MatchPoolSize caps the candidate pool scored
	// per pantry-match request.
	MatchPoolSize int

	// Rate limiting for anonymous search/match traffic.
	SearchRateLimit  int
	SearchRateWindow time.Duration
}

// LoadConfig builds a Config from environment variables, applying defaults
// and validating the result.
func LoadConfig() (*Config, error) {
	// Best effort; the file is optional outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "pantrycook"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "pantrycook"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.MatchPoolSize, err = getEnvInt("MATCH_POOL_SIZE", 1000); err != nil {
		return nil, err
	}
	if cfg.SearchRateLimit, err = getEnvInt("SEARCH_RATE_LIMIT", 120); err != nil {
		return nil, err
	}

	window, err := getEnvInt("SEARCH_RATE_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.SearchRateWindow = time.Duration(window) * time.Second

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}
