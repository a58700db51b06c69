package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/eni-training/course_management_app/internal/utils"
)

// claimsKey is the key used to store the authenticated caller's token
// claims in the Gin context. Using a custom type prevents collisions.
const claimsKey = contextKey("claims")

// GetClaimsFromContext retrieves the authenticated caller's claims from the
// Gin context. It returns the claims and a boolean indicating if they were
// found.
func GetClaimsFromContext(c *gin.Context) (*utils.Claims, bool) {
	claimsVal, exists := c.Get(string(claimsKey))
	if !exists {
		claimsVal = c.Request.Context().Value(claimsKey)
		if claimsVal == nil {
			return nil, false
		}
	}

	claims, ok := claimsVal.(*utils.Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// GetUserIDFromContext retrieves the authenticated caller's user ID from
// the Gin context.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	claims, ok := GetClaimsFromContext(c)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
