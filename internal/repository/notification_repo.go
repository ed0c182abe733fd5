package repository

import (
	"context"
	"fmt"

	"yourfuture/internal/model"
)

// NotificationRepository defines operations for notification data
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
}

type notificationRepository struct {
	db DBTX
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db DBTX) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create inserts a new notification
func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	sql := `INSERT INTO notifications (user_id, admin_id, message, timestamp, is_read)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, n.UserID, n.AdminID, n.Message, n.Timestamp, n.IsRead).Scan(&n.ID); err != nil {
		return wrapError(err, "create notification")
	}
	return nil
}

// ListByUser returns the notifications addressed to userID, newest first
func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	sql := `SELECT id, user_id, admin_id, message, timestamp, is_read
              FROM notifications WHERE user_id = $1 ORDER BY timestamp DESC, id DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.AdminID, &n.Message, &n.Timestamp, &n.IsRead); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}
