package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/eni-training/course_management_app/internal/middleware"
	"github.com/eni-training/course_management_app/internal/utils"
)

const testSecret = "test-secret"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/protected", middleware.AuthMiddleware(testSecret))
	protected.GET("/me", func(c *gin.Context) {
		claims, ok := middleware.GetClaimsFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "rol": claims.Role})
	})
	protected.GET("/admin", middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func tokenFor(t *testing.T, role domain.Role, expiry time.Duration) string {
	t.Helper()
	user := &domain.User{ID: 5, Email: "u@example.com", FirstName: "U", LastName: "Ser", Role: role}
	token, err := utils.GenerateJWT(user, testSecret, expiry, "course-management-app")
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REQUIRED")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, domain.RoleTrainee, -time.Minute))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, domain.RoleTrainee, time.Hour))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":5`)
}

func TestRequireAdmin_TraineeForbidden(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, domain.RoleTrainee, time.Hour))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, domain.RoleAdministrator, time.Hour))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
