package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/pseudonym/internal/auth/http"
	authService "github.com/allisson/pseudonym/internal/auth/service"
	"github.com/allisson/pseudonym/internal/config"
	maskingHTTP "github.com/allisson/pseudonym/internal/masking/http"
	"github.com/allisson/pseudonym/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server with all middleware and routes wired.
// The metrics provider may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	maskingHandler *maskingHTTP.MaskingHandler,
	keyService authService.APIKeyService,
	metricsProvider *metrics.Provider,
	logger *slog.Logger,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(CustomLoggerMiddleware(logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", healthHandler)
	router.GET("/ready", readinessHandler)

	v1 := router.Group("/v1")

	if hashedKeys := parseAPIKeyHashes(cfg.APIKeyHashes); len(hashedKeys) > 0 {
		v1.Use(authHTTP.AuthenticationMiddleware(keyService, hashedKeys, logger))
	} else {
		logger.Warn("no api key hashes configured - authentication disabled")
	}

	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	maskingHandler.RegisterRoutes(v1)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting api server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start api server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down api server")
	return s.server.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func readinessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// parseAPIKeyHashes splits the comma-separated hash list from configuration.
func parseAPIKeyHashes(hashesStr string) []string {
	if hashesStr == "" {
		return nil
	}

	parts := strings.Split(hashesStr, ",")
	hashes := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			hashes = append(hashes, trimmed)
		}
	}
	return hashes
}
