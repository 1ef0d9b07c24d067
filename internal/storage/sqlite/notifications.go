package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/roommates/internal/models"
)

const notificationColumns = `id, room_id, sender_id, recipient_id, title, description, notification_time, is_read`

func scanNotification(row rowScanner) (*models.Notification, error) {
	n := &models.Notification{}
	var at int64
	if err := row.Scan(&n.ID, &n.RoomID, &n.SenderID, &n.RecipientID,
		&n.Title, &n.Description, &at, &n.IsRead); err != nil {
		return nil, err
	}
	n.Time = fromUnix(at)
	return n, nil
}

// CreateNotification persists a new notification.
func (s *txStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	res, err := s.tx.ExecContext(ctx,
		`INSERT INTO notifications (room_id, sender_id, recipient_id, title, description, notification_time, is_read)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.RoomID, n.SenderID, n.RecipientID, n.Title, n.Description, n.Time.Unix(), n.IsRead,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read notification id: %w", err)
	}
	n.ID = id

	return nil
}

// GetNotification retrieves a notification by ID.
func (s *txStore) GetNotification(ctx context.Context, id int64) (*models.Notification, error) {
	n, err := scanNotification(s.tx.QueryRowContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("notification", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return n, nil
}

// ListNotifications retrieves a room's notifications, newest first.
func (s *txStore) ListNotifications(ctx context.Context, roomID int64, filter models.NotificationFilter) ([]*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE room_id = ?`
	args := []any{roomID}
	if filter.SenderID != 0 {
		query += " AND sender_id = ?"
		args = append(args, filter.SenderID)
	}
	if filter.RecipientID != 0 {
		query += " AND recipient_id = ?"
		args = append(args, filter.RecipientID)
	}
	query += " ORDER BY notification_time DESC, id DESC"

	rows, err := s.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// UpdateNotification writes the editable fields of a notification.
func (s *txStore) UpdateNotification(ctx context.Context, n *models.Notification) error {
	res, err := s.tx.ExecContext(ctx,
		"UPDATE notifications SET recipient_id = ?, title = ?, description = ?, is_read = ? WHERE id = ?",
		n.RecipientID, n.Title, n.Description, n.IsRead, n.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	return mustAffect(res, "notification", n.ID)
}

// DeleteNotification removes a notification by ID.
func (s *txStore) DeleteNotification(ctx context.Context, id int64) error {
	res, err := s.tx.ExecContext(ctx, "DELETE FROM notifications WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return mustAffect(res, "notification", id)
}

// DeleteRoomNotifications removes every notification of a room.
func (s *txStore) DeleteRoomNotifications(ctx context.Context, roomID int64) error {
	if _, err := s.tx.ExecContext(ctx, "DELETE FROM notifications WHERE room_id = ?", roomID); err != nil {
		return fmt.Errorf("failed to delete room notifications: %w", err)
	}
	return nil
}
