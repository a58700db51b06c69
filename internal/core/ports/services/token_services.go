package services

import (
	"context"
	"time"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// TokenSvc issues signed bearer tokens. Verification lives in the auth
// middleware; the claims encoded at issuance are the sole source of caller
// identity until the token is refreshed.
type TokenSvc interface {
	IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
