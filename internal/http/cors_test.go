package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Disabled_ReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, "https://app.example.com", logger))
	})

	t.Run("Enabled_NoOrigins_ReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, "", logger))
	})

	t.Run("Enabled_WithOrigins_AppliesHeaders", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		middleware := createCORSMiddleware(true, "https://app.example.com", logger)
		require.NotNil(t, middleware)

		router := gin.New()
		router.Use(middleware)
		router.POST("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Enabled_UnlistedOrigin_Rejected", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		middleware := createCORSMiddleware(true, "https://app.example.com", logger)
		require.NotNil(t, middleware)

		router := gin.New()
		router.Use(middleware)
		router.POST("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t, []string{"https://a.example.com"}, parseOrigins("https://a.example.com"))
	assert.Equal(
		t,
		[]string{"https://a.example.com", "https://b.example.com"},
		parseOrigins(" https://a.example.com , https://b.example.com "),
	)
	assert.Empty(t, parseOrigins(" , ,"))
}
