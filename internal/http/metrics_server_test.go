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

	"github.com/allisson/pseudonym/internal/metrics"
)

func TestMetricsServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Success_ServesMetrics", func(t *testing.T) {
		provider, err := metrics.NewProvider("metrics_server_test")
		require.NoError(t, err)

		server := NewMetricsServer("localhost", 8081, logger, provider)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "target_info")
	})

	t.Run("Success_NilProviderNoMetricsRoute", func(t *testing.T) {
		server := NewMetricsServer("localhost", 8081, logger, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
