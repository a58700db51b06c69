package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/eni-training/course_management_app/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer
// tokens and attaches the decoded claims to the request context. The claims
// are the sole source of caller identity downstream; the user record is not
// re-fetched per request.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required", "code": "TOKEN_REQUIRED"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}", "code": "TOKEN_REQUIRED"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "code": "INVALID_TOKEN"})
			return
		}

		if claims.UserID == 0 {
			logger.Error("User ID missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims", "code": "INVALID_TOKEN"})
			return
		}

		enrichedLogger := logger.With(slog.Int64("user_id", claims.UserID))

		ctx := context.WithValue(c.Request.Context(), claimsKey, claims)
		ctx = context.WithValue(ctx, loggerKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(claimsKey), claims)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}
