package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	portssvc "github.com/eni-training/course_management_app/internal/core/ports/services"
	"github.com/eni-training/course_management_app/internal/middleware"
)

type notificationService struct {
	notificationRepo portsrepo.NotificationRepository
	userRepo         portsrepo.UserRepository
}

// NewNotificationService creates the notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepository, userRepo portsrepo.UserRepository) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo, userRepo: userRepo}
}

func (s *notificationService) NotifyAreas(ctx context.Context, areaIDs []int64, subject, body string, attachments []string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(areaIDs) == 0 {
		return 0, apperrors.NewValidation("MISSING_FIELDS", "At least one area is required")
	}
	users, err := s.userRepo.FindUsersByAreaIDs(ctx, areaIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to find recipients: %w", err)
	}
	if len(users) == 0 {
		return 0, apperrors.NewNotFound("NO_RECIPIENTS", "No users found in the selected areas")
	}

	notifications := make([]domain.Notification, 0, len(users))
	for _, user := range users {
		notifications = append(notifications, domain.Notification{
			RecipientUserID: user.ID,
			AreaID:          user.AreaID,
			Subject:         subject,
			Body:            body,
			Attachments:     attachments,
		})
	}
	if err := s.notificationRepo.CreateNotifications(ctx, notifications); err != nil {
		return 0, fmt.Errorf("failed to store notifications: %w", err)
	}
	logger.Info("area notification fanned out", "areas", len(areaIDs), "recipients", len(users))
	return len(users), nil
}

func (s *notificationService) ListForRecipient(ctx context.Context, userID int64) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByRecipient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID int64) error {
	err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound("NOTIFICATION_NOT_FOUND", "Notification not found")
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
