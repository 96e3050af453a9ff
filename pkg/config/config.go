package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	Environment          string
	ServerPort           int
	RedisURL             string
	SessionStore         string // "memory" or "redis"
	SessionTTLMinutes    int
	SweepIntervalMinutes int
	JWTSecret            string
	RateLimitPerMinute   int
	LogLevel             string
	CORSAllowedOrigins   []string
	ListingCacheSeconds  int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
	}

	sweepInterval, err := strconv.Atoi(getEnv("SWEEP_INTERVAL_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL_MINUTES: %w", err)
	}

	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}

	listingCache, err := strconv.Atoi(getEnv("LISTING_CACHE_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid LISTING_CACHE_SECONDS: %w", err)
	}

	store := getEnv("SESSION_STORE", "memory")
	if store != "memory" && store != "redis" {
		return nil, fmt.Errorf("invalid SESSION_STORE %q: want memory or redis", store)
	}

	return &Config{
		Environment:          getEnv("ENVIRONMENT", "development"),
		ServerPort:           port,
		RedisURL:             getEnv("REDIS_URL", "redis://localhost:6379"),
		SessionStore:         store,
		SessionTTLMinutes:    sessionTTL,
		SweepIntervalMinutes: sweepInterval,
		JWTSecret:            getEnv("JWT_SECRET", ""),
		RateLimitPerMinute:   rateLimit,
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: parseCSVEnv("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:3000",
		}),
		ListingCacheSeconds: listingCache,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseCSVEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
