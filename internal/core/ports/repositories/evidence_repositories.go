package repositories

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// EvidenceRepository defines persistence operations for evidence files.
type EvidenceRepository interface {
	CreateEvidence(ctx context.Context, evidence domain.Evidence) (*domain.Evidence, error)
	FindEvidenceByID(ctx context.Context, evidenceID int64) (*domain.Evidence, error)
	ListEvidence(ctx context.Context) ([]domain.Evidence, error)
	ListEvidenceByOwner(ctx context.Context, ownerUserID int64) ([]domain.Evidence, error)
	UpdateEvidence(ctx context.Context, evidence domain.Evidence) error
	DeleteEvidence(ctx context.Context, evidenceID int64) error
	CountEvidenceByStatus(ctx context.Context) ([]domain.EvidenceStatusCount, error)
}
