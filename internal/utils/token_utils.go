package utils

import (
	"strconv"
	"time"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set encoded at token issuance. It is the sole source
// of caller identity for protected requests: the user record is not
// re-fetched, so role or area changes only take effect after a new token is
// issued.
type Claims struct {
	UserID    int64       `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"nombre"`
	LastName  string      `json:"apellido"`
	Role      domain.Role `json:"rol"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 token carrying the user's identity claims.
func GenerateJWT(user *domain.User, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string, validates its signature and
// standard claims, and returns the identity claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
