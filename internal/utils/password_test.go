package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/eni-training/course_management_app/internal/utils"
)

func TestHashPassword_ProducesVerifiableHashedCredential(t *testing.T) {
	hash, err := utils.HashPassword("s3cret!")
	require.NoError(t, err)

	cred := domain.ParseCredential(hash)
	assert.Equal(t, domain.CredentialHashed, cred.Kind)
	assert.True(t, cred.Matches("s3cret!"))
	assert.False(t, cred.Matches("other"))
}
