package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/eni-training/course_management_app/internal/middleware"
)

func TestStructuredLoggingMiddleware_InstallsRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		// Both lookups must yield the request-scoped logger.
		middleware.GetLoggerFromContext(c).Info("from gin context")
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("from request context")
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	out := buf.String()
	assert.Contains(t, out, "from gin context")
	assert.Contains(t, out, "from request context")
	assert.Contains(t, out, "request_id")
	assert.Contains(t, out, "Request completed")
}

func TestGetLoggerFromContext_FallsBackToDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NotNil(t, middleware.GetLoggerFromContext(c))
}
