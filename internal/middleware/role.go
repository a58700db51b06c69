package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// RequireAdmin allows the request through only when the authenticated
// caller's role claim is Administrador. It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "TOKEN_REQUIRED"})
			return
		}
		if claims.Role != domain.RoleAdministrator {
			GetLoggerFromCtx(c.Request.Context()).Warn("admin-only endpoint rejected", "role", string(claims.Role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator role required", "code": "FORBIDDEN"})
			return
		}
		c.Next()
	}
}
