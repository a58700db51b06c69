package domain

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role is the closed set of user roles. The string values are the ones
// persisted and carried in token claims.
type Role string

const (
	RoleAdministrator Role = "Administrador"
	RoleTrainee       Role = "Alumno"
	RoleTrainer       Role = "Formador"
)

// ParseRole validates a role string. Unknown values are rejected rather than
// silently defaulted.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrator, RoleTrainee, RoleTrainer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// CredentialKind distinguishes how a stored password is compared.
type CredentialKind int

const (
	// CredentialHashed is a bcrypt digest. All new and updated passwords
	// are stored this way.
	CredentialHashed CredentialKind = iota
	// CredentialPlaintext is a legacy row that predates hashing. Kept only
	// until the one-time migration retires the variant.
	CredentialPlaintext
)

// Credential is the stored password in tagged form, so the dual-mode
// comparison is an explicit branch instead of a prefix sniff at call sites.
type Credential struct {
	Kind  CredentialKind
	Value string
}

// ParseCredential classifies a stored password value. Bcrypt digests carry a
// $2a$ or $2b$ prefix; anything else is treated as a legacy plaintext row.
func ParseCredential(stored string) Credential {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return Credential{Kind: CredentialHashed, Value: stored}
	}
	return Credential{Kind: CredentialPlaintext, Value: stored}
}

// Matches reports whether the supplied plaintext password matches the
// credential under its comparison mode.
func (c Credential) Matches(password string) bool {
	switch c.Kind {
	case CredentialHashed:
		return bcrypt.CompareHashAndPassword([]byte(c.Value), []byte(password)) == nil
	case CredentialPlaintext:
		return subtle.ConstantTimeCompare([]byte(c.Value), []byte(password)) == 1
	}
	return false
}

// User represents an account of the platform.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"rol"`
	AreaID       *int64    `json:"areaId"` // nil for administrators
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Credential returns the stored password in tagged form.
func (u *User) Credential() Credential {
	return ParseCredential(u.PasswordHash)
}
