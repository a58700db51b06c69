package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/eni-training/course_management_app/internal/utils"
)

const testSecret = "test-secret"

func testUser() *domain.User {
	areaID := int64(3)
	return &domain.User{
		ID:        42,
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@example.com",
		Role:      domain.RoleTrainer,
		AreaID:    &areaID,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), testSecret, time.Hour, "course-management-app")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.FirstName)
	assert.Equal(t, domain.RoleTrainer, claims.Role)
	assert.Equal(t, "course-management-app", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), testSecret, time.Hour, "course-management-app")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), testSecret, -time.Minute, "course-management-app")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseJWT_RejectsNonHMACAlgorithm(t *testing.T) {
	// Token signed with "none" must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "42"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(tokenString, testSecret)
	assert.Error(t, err)
}
