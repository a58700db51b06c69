package services

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
	"github.com/eni-training/course_management_app/internal/dto"
)

// EvidenceSvcFacade defines evidence operations: submission by users,
// listing and moderation by administrators.
type EvidenceSvcFacade interface {
	// SubmitEvidence records the uploaded files as pending evidence rows
	// and notifies every administrator. Returns the number of
	// administrators notified.
	SubmitEvidence(ctx context.Context, ownerUserID int64, ownerName string, uploads []dto.EvidenceUpload, description string) (int, error)

	GetEvidence(ctx context.Context, evidenceID int64) (*domain.Evidence, error)
	ListEvidence(ctx context.Context) ([]domain.Evidence, error)
	ListEvidenceByOwner(ctx context.Context, ownerUserID int64) ([]domain.Evidence, error)
	UpdateEvidence(ctx context.Context, evidenceID int64, req dto.UpdateEvidenceRequest) (*domain.Evidence, error)
	DeleteEvidence(ctx context.Context, evidenceID int64) error

	// StatusSummary returns per-status evidence counts.
	StatusSummary(ctx context.Context) ([]domain.EvidenceStatusCount, error)
}
