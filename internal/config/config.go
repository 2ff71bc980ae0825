package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string
	SiteTitle  string // shown on rendered pages

	// Database
	DatabaseURL string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Auth
	JWTSecret  string        // HS256 signing secret (min 32 chars in production)
	TokenTTL   time.Duration // 0 disables token expiry
	BcryptCost int

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RedisURL     string // Optional; limiter state is kept in memory when empty
	RateLimitMax int    // Requests per minute per IP

	// Logging
	LogLevel  string
	LogFormat string // "json" or "text"; derived from Env when empty

	// Seeding
	SeedFile string
}

// defaultJWTSecret is only acceptable in development.
const defaultJWTSecret = "change-me-in-production-min-32-chars"

// minJWTSecretLen is the shortest signing secret accepted outside development.
const minJWTSecretLen = 32

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment take precedence over it.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		SiteTitle:    getEnv("SITE_TITLE", "ReBrain"),
		DatabaseURL:  getEnv("DATABASE_URL", "postgres://localhost:5432/rebrain?sslmode=disable"),
		TLSEnabled:   getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:  getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:   getEnv("TLS_KEY_FILE", ""),
		JWTSecret:    getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:     getEnvDuration("TOKEN_TTL", 7*24*time.Hour),
		BcryptCost:   getEnvInt("BCRYPT_COST", 10),
		CORSOrigins:  getEnv("CORS_ORIGINS", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", ""),
		SeedFile:     getEnv("SEED_FILE", "seed.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("ignoring invalid integer setting", "key", key, "value", value)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
		slog.Warn("ignoring invalid duration setting", "key", key, "value", value)
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// Validate reports settings that are unsafe or unusable for the current
// environment.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.TLSEnabled && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE are required when TLS_ENABLED is set")
	}
	if c.IsDev() {
		return nil
	}
	if c.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set outside development")
	}
	if len(c.JWTSecret) < minJWTSecretLen {
		return errors.New("JWT_SECRET must be at least 32 characters outside development")
	}
	return nil
}
