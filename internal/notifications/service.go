// Package notifications lets roommates send each other messages within a room.
package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/roommates/internal/household"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
)

// Input describes a new notification.
type Input struct {
	RecipientID int64
	Title       string
	Description string
}

// Service implements notification operations scoped to the caller's room.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Send creates a notification from the caller to another member of the
// same room.
func (s *Service) Send(ctx context.Context, senderID int64, in Input, now time.Time) (*models.Notification, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: notification title is required", models.ErrValidation)
	}

	var n *models.Notification
	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		_, room, err := household.RoomOf(ctx, tx, senderID)
		if err != nil {
			return err
		}
		if _, err := household.RequireMember(ctx, tx, room.ID, in.RecipientID); err != nil {
			return err
		}
		n = &models.Notification{
			RoomID:      room.ID,
			SenderID:    senderID,
			RecipientID: in.RecipientID,
			Title:       title,
			Description: in.Description,
			Time:        now.UTC().Truncate(time.Second),
		}
		return tx.CreateNotification(ctx, n)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// List returns the notifications of the caller's room, newest first.
func (s *Service) List(ctx context.Context, personID int64, filter models.NotificationFilter) ([]*models.Notification, error) {
	var list []*models.Notification
	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		_, room, err := household.RoomOf(ctx, tx, personID)
		if err != nil {
			return err
		}
		list, err = tx.ListNotifications(ctx, room.ID, filter)
		return err
	})
	return list, err
}

// MarkRead flags a notification as read. Only its recipient may do so.
func (s *Service) MarkRead(ctx context.Context, personID, notificationID int64) (*models.Notification, error) {
	var n *models.Notification
	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		var err error
		n, err = load(ctx, tx, personID, notificationID)
		if err != nil {
			return err
		}
		if n.RecipientID != personID {
			return fmt.Errorf("notification %d is addressed to someone else: %w", notificationID, models.ErrInvalidState)
		}
		n.IsRead = true
		return tx.UpdateNotification(ctx, n)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Delete removes a notification. Its sender or recipient may do so.
func (s *Service) Delete(ctx context.Context, personID, notificationID int64) error {
	return s.store.InTx(ctx, func(tx storage.Tx) error {
		n, err := load(ctx, tx, personID, notificationID)
		if err != nil {
			return err
		}
		if n.SenderID != personID && n.RecipientID != personID {
			return fmt.Errorf("notification %d was neither sent nor received by person %d: %w",
				notificationID, personID, models.ErrInvalidState)
		}
		return tx.DeleteNotification(ctx, notificationID)
	})
}

// load fetches a notification of the caller's room. Notifications of other
// rooms are reported as not found.
func load(ctx context.Context, tx storage.Tx, personID, notificationID int64) (*models.Notification, error) {
	_, room, err := household.RoomOf(ctx, tx, personID)
	if err != nil {
		return nil, err
	}
	n, err := tx.GetNotification(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.RoomID != room.ID {
		return nil, fmt.Errorf("notification %d: %w", notificationID, models.ErrNotFound)
	}
	return n, nil
}
