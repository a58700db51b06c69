package services

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/eni-training/course_management_app/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new user. The area code must reference an existing
	// area and the email must be unused.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// ChangePassword resets the password for the account with the given
	// email. The new password is always stored hashed.
	ChangePassword(ctx context.Context, email, newPassword string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// DeleteUser removes a user account.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// VerifyCredentials authenticates a user with email and password under
	// the dual-mode comparison (bcrypt or legacy plaintext).
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
