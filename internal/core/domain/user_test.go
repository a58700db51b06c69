package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"Administrador", "Alumno", "Formador"} {
		role, err := domain.ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(role))
	}

	for _, invalid := range []string{"", "admin", "ADMINISTRADOR", "Profesor"} {
		_, err := domain.ParseRole(invalid)
		assert.Error(t, err, "role %q should be rejected", invalid)
	}
}

func TestParseCredential(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	cred := domain.ParseCredential(string(hash))
	assert.Equal(t, domain.CredentialHashed, cred.Kind)

	cred = domain.ParseCredential("secret123")
	assert.Equal(t, domain.CredentialPlaintext, cred.Kind)

	// A $2y$ digest (other bcrypt flavor) is not produced by this codebase
	// and is treated as plaintext, like the reference comparison did.
	cred = domain.ParseCredential("$2y$10$abcdefghijklmnopqrstuv")
	assert.Equal(t, domain.CredentialPlaintext, cred.Kind)
}

func TestCredentialMatches(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	hashed := domain.ParseCredential(string(hash))
	assert.True(t, hashed.Matches("secret123"))
	assert.False(t, hashed.Matches("wrong"))

	plain := domain.ParseCredential("secret123")
	assert.True(t, plain.Matches("secret123"))
	assert.False(t, plain.Matches("secret1234"))
	assert.False(t, plain.Matches(""))
}
