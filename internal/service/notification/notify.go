package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
	"github.com/m1nazuk1/cloud-storage/internal/realtime"
)

// NotifyGroup delivers a notification about a group event to every member of
// the group except excludedUser (the acting user, who already knows).
//
// Each recipient is its own delivery unit: a failure for one recipient is
// logged and does not stop delivery to the rest. The overall call fails only
// when the member list itself cannot be read.
func (s *Service) NotifyGroup(ctx context.Context, kind domain.NotificationKind, message string, groupID, excludedUser uuid.UUID) error {
	memberIDs, err := s.members.ListMemberIDs(ctx, groupID)
	if err != nil {
		return fmt.Errorf("list group members: %w", err)
	}

	delivered := 0
	for _, recipientID := range memberIDs {
		if recipientID == excludedUser {
			continue
		}
		if err := s.NotifyUser(ctx, kind, message, groupID, recipientID); err != nil {
			s.log.WarnContext(ctx, "notification delivery failed",
				slog.String("group_id", groupID.String()),
				slog.String("recipient_id", recipientID.String()),
				slog.String("kind", kind.String()),
				slog.Any("error", err),
			)
			continue
		}
		delivered++
	}

	s.log.InfoContext(ctx, "group notification fan-out",
		slog.String("group_id", groupID.String()),
		slog.String("kind", kind.String()),
		slog.Int("delivered", delivered),
	)

	return nil
}

// NotifyUser delivers a single notification to one recipient and pushes it on
// the recipient's realtime topic. The realtime push is best-effort.
func (s *Service) NotifyUser(ctx context.Context, kind domain.NotificationKind, message string, groupID, recipientID uuid.UUID) error {
	n := &domain.Notification{
		ID:          uuid.New(),
		Kind:        kind,
		Message:     message,
		RecipientID: recipientID,
		GroupID:     groupID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	s.realtime.Publish(realtime.UserNotificationsTopic(recipientID), n)

	return nil
}
