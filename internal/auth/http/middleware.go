// Package http provides HTTP middleware for authentication and rate limiting.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/pseudonym/internal/auth/service"
	apperrors "github.com/allisson/pseudonym/internal/errors"
	"github.com/allisson/pseudonym/internal/httputil"
)

// AuthenticationMiddleware provides authentication via Bearer API key in the
// Authorization header.
//
// The middleware:
// 1. Extracts the Bearer key from the Authorization header (case-insensitive)
// 2. Verifies it against the configured Argon2id key hashes
// 3. Rejects with 401 Unauthorized on any mismatch
//
// Authorization header format: "Bearer <key>" (case-insensitive "bearer").
func AuthenticationMiddleware(
	keyService authService.APIKeyService,
	hashedKeys []string,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		plainKey := authHeader[len(bearerPrefix):]
		if plainKey == "" {
			logger.Debug("authentication failed: empty bearer key")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		for _, hashedKey := range hashedKeys {
			if keyService.CompareKey(plainKey, hashedKey) {
				c.Next()
				return
			}
		}

		logger.Debug("authentication failed: unknown api key")
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
		c.Abort()
	}
}
