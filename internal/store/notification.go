package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sqlCreateNotification = `
INSERT INTO notifications (user_id, message, type)
VALUES ($1, $2, $3)
RETURNING id, user_id, message, type, created_at
`

// CreateNotification queues a message for a user
func (s *Store) CreateNotification(ctx context.Context, userID uuid.UUID, message, notificationType string) (Notification, error) {
	var notification Notification
	err := s.db.GetContext(ctx, &notification, sqlCreateNotification, userID, message, notificationType)
	if err != nil {
		s.logger.Error(ctx, "failed to create notification", err)
		return Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	return notification, nil
}

const sqlGetNotificationsByUser = `
SELECT id, user_id, message, type, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`

// GetNotificationsByUser retrieves a user's most recent notifications
func (s *Store) GetNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Notification, error) {
	var notifications []Notification
	err := s.db.SelectContext(ctx, &notifications, sqlGetNotificationsByUser, userID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get notifications by user", err)
		return nil, fmt.Errorf("failed to get notifications by user: %w", err)
	}
	return notifications, nil
}
