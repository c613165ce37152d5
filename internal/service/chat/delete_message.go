package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
	"github.com/m1nazuk1/cloud-storage/internal/realtime"
)

// DeleteMessage removes a message. The sender may delete their own message;
// a group ADMIN or the CREATOR may delete anyone's. The message id is pushed
// to the group's chat delete topic so clients can drop it.
func (s *Service) DeleteMessage(ctx context.Context, requesterID, messageID uuid.UUID) error {
	m, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if m.SenderID != requesterID {
		elevated, err := s.policy.IsAdminOrCreator(ctx, requesterID, m.GroupID)
		if err != nil {
			return err
		}
		if !elevated {
			return fmt.Errorf("delete message %s: %w", messageID, domain.ErrForbidden)
		}
	}

	if err := s.messages.Delete(ctx, messageID); err != nil {
		return err
	}

	s.realtime.Publish(realtime.GroupChatDeleteTopic(m.GroupID), messageID)

	s.log.InfoContext(ctx, "chat message deleted",
		slog.String("message_id", messageID.String()),
		slog.String("group_id", m.GroupID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	return nil
}
