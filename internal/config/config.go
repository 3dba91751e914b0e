// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the API server will bind to.
	ServerHost string
	// ServerPort is the port number the API server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MasterSalt is the base64-encoded plaintext master salt.
	MasterSalt string
	// MasterSaltEncrypted is the base64-encoded KMS-wrapped master salt.
	// Used instead of MasterSalt when the salt is protected by a KMS.
	MasterSaltEncrypted string
	// KMSKeyURI is the URI for the key that unwraps MasterSaltEncrypted.
	KMSKeyURI string

	// DefaultLocale selects the locale tables used when a request names none.
	DefaultLocale string
	// PreserveEmailDomain is the default for keeping original email domains.
	PreserveEmailDomain bool

	// APIKeyHashes is a comma-separated list of Argon2id hashes of accepted
	// API keys. Empty disables authentication.
	APIKeyHashes string

	// RateLimitEnabled indicates whether rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per caller.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Master salt
		MasterSalt:          env.GetString("MASTER_SALT", ""),
		MasterSaltEncrypted: env.GetString("MASTER_SALT_ENCRYPTED", ""),
		KMSKeyURI:           env.GetString("KMS_KEY_URI", ""),

		// Masking defaults
		DefaultLocale:       env.GetString("DEFAULT_LOCALE", "en"),
		PreserveEmailDomain: env.GetBool("PRESERVE_EMAIL_DOMAIN", false),

		// Auth
		APIKeyHashes: env.GetString("API_KEY_HASHES", ""),

		// Rate Limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 50.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 100),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "pseudonym"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
