package dto

import (
	"github.com/eni-training/course_management_app/internal/core/domain"
)

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID        int64       `json:"id"`
	FirstName string      `json:"nombre"`
	LastName  string      `json:"apellido"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"rol"`
	AreaID    *int64      `json:"areaId"`
}

// ToUserResponse converts a domain.User to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		AreaID:    user.AreaID,
	}
}

// ProfileResponse wraps the caller's own profile.
type ProfileResponse struct {
	Message string       `json:"mensaje"`
	User    UserResponse `json:"usuario"`
}

// ChangePasswordRequest resets a password by email. No authentication is
// required, matching the reference behavior.
type ChangePasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"nuevaPassword" binding:"required"`
}
