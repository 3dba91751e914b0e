package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Empty(t, cfg.MasterSalt)
				assert.Empty(t, cfg.MasterSaltEncrypted)
				assert.Empty(t, cfg.KMSKeyURI)
				assert.Equal(t, "en", cfg.DefaultLocale)
				assert.False(t, cfg.PreserveEmailDomain)
				assert.Empty(t, cfg.APIKeyHashes)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 50.0, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 100, cfg.RateLimitBurst)
				assert.False(t, cfg.CORSEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "pseudonym", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST": "localhost",
				"SERVER_PORT": "9090",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
			},
		},
		{
			name: "load master salt configuration",
			envVars: map[string]string{
				"MASTER_SALT_ENCRYPTED": "ZW5jcnlwdGVk",
				"KMS_KEY_URI":           "base64key://key",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "ZW5jcnlwdGVk", cfg.MasterSaltEncrypted)
				assert.Equal(t, "base64key://key", cfg.KMSKeyURI)
			},
		},
		{
			name: "load masking defaults",
			envVars: map[string]string{
				"DEFAULT_LOCALE":        "de",
				"PRESERVE_EMAIL_DOMAIN": "true",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "de", cfg.DefaultLocale)
				assert.True(t, cfg.PreserveEmailDomain)
			},
		},
		{
			name: "load custom rate limit configuration",
			envVars: map[string]string{
				"RATE_LIMIT_ENABLED":          "false",
				"RATE_LIMIT_REQUESTS_PER_SEC": "10.5",
				"RATE_LIMIT_BURST":            "20",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.RateLimitEnabled)
				assert.Equal(t, 10.5, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 20, cfg.RateLimitBurst)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			// Load configuration
			cfg := Load()

			// Validate
			tt.validate(t, cfg)
		})
	}
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetGinMode())
		})
	}
}
