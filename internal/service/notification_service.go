package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/notifications"
	"github.com/mmynk/roommates/pkg/api"
)

// NotificationService implements api.NotificationServiceHandler.
type NotificationService struct {
	notifications *notifications.Service
	now           func() time.Time
}

func NewNotificationService(svc *notifications.Service, now func() time.Time) *NotificationService {
	return &NotificationService{notifications: svc, now: now}
}

func (s *NotificationService) SendNotification(ctx context.Context, req *connect.Request[api.SendNotificationRequest]) (*connect.Response[api.NotificationResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SendNotification request received", "person_id", personID, "recipient_id", req.Msg.RecipientID)

	n, err := s.notifications.Send(ctx, personID, notifications.Input{
		RecipientID: req.Msg.RecipientID,
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
	}, s.now())
	if err != nil {
		return nil, toConnectError(ctx, "SendNotification", err)
	}
	return connect.NewResponse(&api.NotificationResponse{Notification: toAPINotification(n)}), nil
}

func (s *NotificationService) ListNotifications(ctx context.Context, req *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.notifications.List(ctx, personID, models.NotificationFilter{
		SenderID:    req.Msg.SenderID,
		RecipientID: req.Msg.RecipientID,
	})
	if err != nil {
		return nil, toConnectError(ctx, "ListNotifications", err)
	}

	out := make([]*api.Notification, 0, len(list))
	for _, n := range list {
		out = append(out, toAPINotification(n))
	}
	return connect.NewResponse(&api.ListNotificationsResponse{Notifications: out}), nil
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, req *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.NotificationResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.notifications.MarkRead(ctx, personID, req.Msg.NotificationID)
	if err != nil {
		return nil, toConnectError(ctx, "MarkNotificationRead", err)
	}
	return connect.NewResponse(&api.NotificationResponse{Notification: toAPINotification(n)}), nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, req *connect.Request[api.DeleteNotificationRequest]) (*connect.Response[api.Empty], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteNotification request received", "person_id", personID, "notification_id", req.Msg.NotificationID)

	if err := s.notifications.Delete(ctx, personID, req.Msg.NotificationID); err != nil {
		return nil, toConnectError(ctx, "DeleteNotification", err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}
