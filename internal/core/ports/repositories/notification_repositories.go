package repositories

import (
	"context"

	"github.com/eni-training/course_management_app/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	// CreateNotifications inserts the batch produced by a fan-out in one
	// round trip.
	CreateNotifications(ctx context.Context, notifications []domain.Notification) error

	ListNotificationsByRecipient(ctx context.Context, userID int64) ([]domain.Notification, error)

	// MarkNotificationRead marks the notification read only when it belongs
	// to the given recipient. Returns apperrors.ErrNotFound otherwise.
	MarkNotificationRead(ctx context.Context, notificationID, recipientUserID int64) error
}
