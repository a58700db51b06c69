package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/dto"
	"github.com/eni-training/course_management_app/internal/middleware"
)

type evidenceService struct {
	evidenceRepo     portsrepo.EvidenceRepository
	userRepo         portsrepo.UserRepository
	notificationRepo portsrepo.NotificationRepository
}

// NewEvidenceService creates the evidence service.
func NewEvidenceService(evidenceRepo portsrepo.EvidenceRepository, userRepo portsrepo.UserRepository, notificationRepo portsrepo.NotificationRepository) portssvc.EvidenceSvcFacade {
	return &evidenceService{
		evidenceRepo:     evidenceRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// SubmitEvidence records the uploaded files as pending evidence and raises
// one notification per administrator so the submission can be reviewed.
func (s *evidenceService) SubmitEvidence(ctx context.Context, ownerUserID int64, ownerName string, uploads []dto.EvidenceUpload, description string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(uploads) == 0 {
		return 0, apperrors.NewValidation("MISSING_FILES", "At least one file is required")
	}

	paths := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		evidence := domain.Evidence{
			OwnerUserID: ownerUserID,
			Name:        upload.Name,
			Path:        upload.Path,
			MimeType:    upload.MimeType,
			SizeBytes:   upload.SizeBytes,
			Description: description,
			Status:      domain.EvidencePending,
		}
		if _, err := s.evidenceRepo.CreateEvidence(ctx, evidence); err != nil {
			return 0, fmt.Errorf("failed to store evidence: %w", err)
		}
		paths = append(paths, upload.Path)
	}

	admins, err := s.userRepo.FindUsersByRole(ctx, domain.RoleAdministrator)
	if err != nil {
		return 0, fmt.Errorf("failed to find administrators: %w", err)
	}
	if len(admins) == 0 {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "NO_ADMINS", "No administrators available to notify")
	}

	subject := "Nueva evidencia subida"
	body := fmt.Sprintf("%s ha subido %d archivo(s) de evidencia.", ownerName, len(uploads))
	notifications := make([]domain.Notification, 0, len(admins))
	for _, admin := range admins {
		notifications = append(notifications, domain.Notification{
			RecipientUserID: admin.ID,
			Subject:         subject,
			Body:            body,
			Attachments:     paths,
		})
	}
	if err := s.notificationRepo.CreateNotifications(ctx, notifications); err != nil {
		return 0, fmt.Errorf("failed to notify administrators: %w", err)
	}
	logger.Info("evidence submitted", "owner_id", ownerUserID, "files", len(uploads), "admins_notified", len(admins))
	return len(admins), nil
}

func (s *evidenceService) GetEvidence(ctx context.Context, evidenceID int64) (*domain.Evidence, error) {
	evidence, err := s.evidenceRepo.FindEvidenceByID(ctx, evidenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get evidence: %w", err)
	}
	if evidence == nil {
		return nil, apperrors.NewNotFound("FILE_NOT_FOUND", "File not found")
	}
	return evidence, nil
}

func (s *evidenceService) ListEvidence(ctx context.Context) ([]domain.Evidence, error) {
	items, err := s.evidenceRepo.ListEvidence(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}
	return items, nil
}

func (s *evidenceService) ListEvidenceByOwner(ctx context.Context, ownerUserID int64) ([]domain.Evidence, error) {
	items, err := s.evidenceRepo.ListEvidenceByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence by owner: %w", err)
	}
	return items, nil
}

func (s *evidenceService) UpdateEvidence(ctx context.Context, evidenceID int64, req dto.UpdateEvidenceRequest) (*domain.Evidence, error) {
	evidence, err := s.evidenceRepo.FindEvidenceByID(ctx, evidenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find evidence: %w", err)
	}
	if evidence == nil {
		return nil, apperrors.NewNotFound("FILE_NOT_FOUND", "File not found")
	}

	if req.Status != nil {
		status, err := domain.ParseEvidenceStatus(*req.Status)
		if err != nil {
			return nil, apperrors.NewValidation("INVALID_STATUS", "Invalid status")
		}
		evidence.Status = status
	}
	if req.Description != nil {
		evidence.Description = *req.Description
	}

	if err := s.evidenceRepo.UpdateEvidence(ctx, *evidence); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("FILE_NOT_FOUND", "File not found")
		}
		return nil, fmt.Errorf("failed to update evidence: %w", err)
	}
	return evidence, nil
}

func (s *evidenceService) DeleteEvidence(ctx context.Context, evidenceID int64) error {
	if err := s.evidenceRepo.DeleteEvidence(ctx, evidenceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound("FILE_NOT_FOUND", "File not found")
		}
		return fmt.Errorf("failed to delete evidence: %w", err)
	}
	return nil
}

func (s *evidenceService) StatusSummary(ctx context.Context) ([]domain.EvidenceStatusCount, error) {
	stats, err := s.evidenceRepo.CountEvidenceByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count evidence by status: %w", err)
	}
	return stats, nil
}
