package repositories

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Find methods return (nil, nil) when no row matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUsersByAreaIDs(ctx context.Context, areaIDs []int64) ([]domain.User, error)
	FindUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	DeleteUser(ctx context.Context, userID int64) error
}
