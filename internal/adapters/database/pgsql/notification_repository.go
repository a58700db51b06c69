package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eni-training/course_management_app/internal/apperrors"
	"github.com/eni-training/course_management_app/internal/core/domain"
	portsrepo "github.com/eni-training/course_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepository struct {
	db *pgxpool.Pool
}

func newPgxNotificationRepository(db *pgxpool.Pool) *notificationRepository {
	return &notificationRepository{db: db}
}

var _ portsrepo.NotificationRepository = (*notificationRepository)(nil)

func (r *notificationRepository) CreateNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
        INSERT INTO notifications (recipient_user_id, area_id, subject, body, attachments)
        VALUES ($1, $2, $3, $4, $5);
    `
	for _, n := range notifications {
		attachments := n.Attachments
		if attachments == nil {
			attachments = []string{}
		}
		// Attachments live in a jsonb column; encode explicitly so the
		// parameter is not inferred as text[].
		encoded, err := json.Marshal(attachments)
		if err != nil {
			return fmt.Errorf("failed to encode attachments: %w", err)
		}
		batch.Queue(query, n.RecipientUserID, n.AreaID, n.Subject, n.Body, encoded)
	}
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert notification batch: %w", err)
		}
	}
	return nil
}

func (r *notificationRepository) ListNotificationsByRecipient(ctx context.Context, userID int64) ([]domain.Notification, error) {
	query := `
        SELECT id, recipient_user_id, area_id, subject, body, attachments, is_read, created_at
        FROM notifications
        WHERE recipient_user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.RecipientUserID, &n.AreaID, &n.Subject, &n.Body, &n.Attachments, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", rows.Err())
	}
	return notifications, nil
}

func (r *notificationRepository) MarkNotificationRead(ctx context.Context, notificationID, recipientUserID int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, notificationID, recipientUserID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
