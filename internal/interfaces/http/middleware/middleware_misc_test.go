package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundilink.backend/pkg/logger"
	"fundilink.backend/pkg/metrics"
)

func TestRequestIDMiddleware_GeneratesAndUsesHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generates request id when header missing", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestIDMiddleware())
		r.GET("/x", func(c *gin.Context) {
			id, ok := c.Get(RequestIDKey)
			require.True(t, ok)
			require.NotEmpty(t, id.(string))
			require.Equal(t, id, c.Request.Context().Value(logger.RequestIDKey))
			c.Status(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	})

	t.Run("uses provided request id header", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestIDMiddleware())
		r.GET("/x", func(c *gin.Context) {
			id, _ := c.Get(RequestIDKey)
			require.Equal(t, "req-123", id.(string))
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggerMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x?q=1", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	r := gin.New()
	r.Use(MetricsMiddleware(metrics.New(reg)))
	r.PATCH("/api/v1/fundi/verify/:fundiId", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/fundi/verify/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	expected := `
# HELP fundilink_http_requests_total HTTP requests by method, route and status.
# TYPE fundilink_http_requests_total counter
fundilink_http_requests_total{method="PATCH",route="/api/v1/fundi/verify/:fundiId",status="200"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "fundilink_http_requests_total"))
}
