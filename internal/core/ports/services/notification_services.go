package services

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// NotificationSvcFacade defines in-app notification operations.
type NotificationSvcFacade interface {
	// NotifyAreas fans one notification out to every user of the given
	// areas and returns the recipient count. An empty recipient set is an
	// error (404 at the boundary).
	NotifyAreas(ctx context.Context, areaIDs []int64, subject, body string, attachments []string) (int, error)

	// ListForRecipient returns the user's notifications, newest first.
	ListForRecipient(ctx context.Context, userID int64) ([]domain.Notification, error)

	// MarkRead marks one notification read; it must belong to the caller.
	MarkRead(ctx context.Context, notificationID, userID int64) error
}
