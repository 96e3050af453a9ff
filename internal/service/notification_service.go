package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yourorg/unihaven/internal/domain"
)

// NotificationService dispatches and tracks per-account notifications
type NotificationService struct {
	notifications domain.NotificationRepository
	logger        *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications domain.NotificationRepository, logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{notifications: notifications, logger: logger}
}

// Send stores a new unread notification with a generated id
func (s *NotificationService) Send(recipientID, content string) (*domain.Notification, error) {
	n := &domain.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Content:     content,
		SentAt:      time.Now(),
	}
	if err := s.notifications.Save(n); err != nil {
		return nil, err
	}
	s.logger.Debug("notification sent",
		slog.String("notification_id", n.ID),
		slog.String("recipient_id", recipientID),
	)
	return n, nil
}

// MarkRead flips the read flag
func (s *NotificationService) MarkRead(id string) error {
	n, err := s.notifications.GetByID(id)
	if err != nil {
		return err
	}
	n.Read = true
	return s.notifications.Save(n)
}

// GetForRecipient returns an account's notifications in send order
func (s *NotificationService) GetForRecipient(recipientID string) ([]*domain.Notification, error) {
	all, err := s.notifications.List()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Notification, 0)
	for _, n := range all {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}
