package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the configuration is usable before the service
// starts.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", cfg.ServerPort)
	}

	if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
		return fmt.Errorf("DB_HOST, DB_NAME and DB_USER are required")
	}

	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	if cfg.MatchPoolSize <= 0 {
		return fmt.Errorf("MATCH_POOL_SIZE must be positive, got %d", cfg.MatchPoolSize)
	}

	if cfg.SearchRateLimit <= 0 {
		return fmt.Errorf("SEARCH_RATE_LIMIT must be positive, got %d", cfg.SearchRateLimit)
	}

	return nil
}
