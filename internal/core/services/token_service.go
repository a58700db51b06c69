package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eni-training/course_management_app/internal/core/domain"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/platform/config"
	"github.com/eni-training/course_management_app/internal/utils"
)

type tokenService struct {
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates the token service from the JWT configuration.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{
		secret: cfg.JWTSecret,
		expiry: cfg.JWTExpiryDuration,
		issuer: cfg.JWTIssuer,
	}
}

func (s *tokenService) IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)
	token, err := utils.GenerateJWT(user, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}
