package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt digest for storage. All password writes go
// through here, so stored credentials always end up hashed; verification of
// stored values lives on domain.Credential.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}
