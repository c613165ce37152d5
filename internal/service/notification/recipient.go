package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// ListNotifications returns all notifications addressed to the requester,
// newest first.
func (s *Service) ListNotifications(ctx context.Context, requesterID uuid.UUID) ([]*domain.Notification, error) {
	return s.notifications.ListByRecipient(ctx, requesterID)
}

// ListUnread returns the requester's unread notifications, newest first.
func (s *Service) ListUnread(ctx context.Context, requesterID uuid.UUID) ([]*domain.Notification, error) {
	return s.notifications.ListUnread(ctx, requesterID)
}

// UnreadCount returns how many unread notifications the requester has.
// Always >= 0, and exactly 0 right after MarkAllRead.
func (s *Service) UnreadCount(ctx context.Context, requesterID uuid.UUID) (int64, error) {
	return s.notifications.CountUnread(ctx, requesterID)
}

// MarkRead marks one of the requester's notifications read. Idempotent: a
// second call succeeds and leaves the original read timestamp in place.
// A notification addressed to someone else is invisible to the requester
// and yields ErrNotFound.
func (s *Service) MarkRead(ctx context.Context, requesterID, notificationID uuid.UUID) error {
	if _, err := s.getOwned(ctx, requesterID, notificationID); err != nil {
		return err
	}

	if err := s.notifications.MarkRead(ctx, notificationID, time.Now().UTC()); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}

// MarkAllRead marks all of the requester's unread notifications read.
// Returns the number of notifications transitioned.
func (s *Service) MarkAllRead(ctx context.Context, requesterID uuid.UUID) (int, error) {
	n, err := s.notifications.MarkAllRead(ctx, requesterID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("recipient_id", requesterID.String()),
		slog.Int("count", n),
	)

	return n, nil
}

// DeleteNotification removes one of the requester's notifications.
func (s *Service) DeleteNotification(ctx context.Context, requesterID, notificationID uuid.UUID) error {
	if _, err := s.getOwned(ctx, requesterID, notificationID); err != nil {
		return err
	}

	if err := s.notifications.Delete(ctx, notificationID); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}

// DeleteAllNotifications removes every notification addressed to the
// requester. Returns the number of removed notifications.
func (s *Service) DeleteAllNotifications(ctx context.Context, requesterID uuid.UUID) (int, error) {
	n, err := s.notifications.DeleteAll(ctx, requesterID)
	if err != nil {
		return 0, fmt.Errorf("delete all notifications: %w", err)
	}

	s.log.InfoContext(ctx, "notifications deleted",
		slog.String("recipient_id", requesterID.String()),
		slog.Int("count", n),
	)

	return n, nil
}

// getOwned loads a notification and hides it behind ErrNotFound when it is
// addressed to a different recipient.
func (s *Service) getOwned(ctx context.Context, requesterID, notificationID uuid.UUID) (*domain.Notification, error) {
	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.RecipientID != requesterID {
		return nil, fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}
	return n, nil
}
