// Package config loads process-wide configuration from environment variables.
// Configuration is read once at startup and treated as read-only afterwards.
package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AuthConfig holds the configuration for the authentication service.
type AuthConfig struct {
	// AppName is used as both issuer and audience of issued tokens.
	AppName string
	// Secret is the signing key material for access tokens.
	// It is required; the service must not start without it.
	Secret string
	// BcryptCost is the work factor for password hashing.
	BcryptCost int
	// Port is the listen port of the HTTP server.
	Port string
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	CORSAllowedOrigins string
}

// BlogConfig holds the configuration for the content-management service.
type BlogConfig struct {
	Port               string
	CORSAllowedOrigins string
}

// ErrMissingSecret is returned when SECRET is not set.
// A missing signing secret is a startup-fatal condition, not a per-request failure.
var ErrMissingSecret = errors.New("SECRET is not set")

// LoadAuth reads the authentication service configuration.
// A .env file is loaded first if present, so local development does not
// need exported variables.
func LoadAuth() (*AuthConfig, error) {
	loadEnvFile()

	cfg := &AuthConfig{
		AppName:            getEnv("APP_NAME", "portal"),
		Secret:             os.Getenv("SECRET"),
		BcryptCost:         getEnvAsInt("BCRYPT_COST", 0),
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
	}

	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}

	return cfg, nil
}

// LoadBlog reads the content-management service configuration.
func LoadBlog() *BlogConfig {
	loadEnvFile()

	return &BlogConfig{
		Port:               getEnv("PORT", "8081"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
	}
}

// loadEnvFile loads variables from .env when the file exists.
func loadEnvFile() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env file", "error", err)
	}
}

// getEnv returns the value of the environment variable or the default.
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable parsed as int, or the default.
func getEnvAsInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment", "key", key, "value", v)
		return defaultValue
	}
	return n
}
