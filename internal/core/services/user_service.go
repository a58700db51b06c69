package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/utils"
)

const minPasswordLength = 6

type userService struct {
	userRepo portsrepo.UserRepository
	areaRepo portsrepo.AreaRepository
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepository, areaRepo portsrepo.AreaRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, areaRepo: areaRepo}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	roleStr := req.Role
	if roleStr == "" {
		roleStr = string(domain.RoleTrainer)
	}
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return nil, apperrors.NewValidation("INVALID_ROLE", "Invalid role")
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewValidation("DUPLICATE_EMAIL", "A user with that email already exists")
	}

	area, err := s.areaRepo.FindAreaByCode(ctx, req.AreaCode)
	if err != nil {
		return nil, fmt.Errorf("failed to look up area code: %w", err)
	}
	if area == nil {
		return nil, apperrors.NewNotFound("AREA_NOT_FOUND", "No area exists with that code")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		AreaID:       &area.ID,
	}
	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewValidation("DUPLICATE_EMAIL", "A user with that email already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// VerifyCredentials looks up the user by email and compares the password
// under the stored credential's mode: bcrypt for hashed rows, direct
// constant-time equality for legacy plaintext rows. New and updated
// passwords are always stored hashed; only pre-existing rows may still be
// plaintext.
func (s *userService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewAppError(401, "USER_NOT_FOUND", "User not found")
	}
	if !user.Credential().Matches(password) {
		return nil, apperrors.NewAppError(401, "INVALID_PASSWORD", "Incorrect password")
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("USER_NOT_FOUND", "User not found")
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperrors.NewValidation("PASSWORD_TOO_SHORT", "Password must be at least 6 characters")
	}
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil {
		return apperrors.NewNotFound("USER_NOT_FOUND", "No user exists with that email")
	}
	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound("USER_NOT_FOUND", "User not found")
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
