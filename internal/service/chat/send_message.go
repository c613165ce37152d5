package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
	"github.com/m1nazuk1/cloud-storage/internal/realtime"
)

// SendMessage posts a message to a group chat on behalf of a member. An
// optional attachment must reference an active file shared in the same group.
// The message is pushed to the group's chat topic after it is stored.
func (s *Service) SendMessage(ctx context.Context, senderID uuid.UUID, input SendMessageInput) (*domain.ChatMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	isMember, err := s.policy.IsMember(ctx, senderID, input.GroupID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("group %s: %w", input.GroupID, domain.ErrForbidden)
	}

	if input.AttachmentID != nil {
		if err := s.checkAttachment(ctx, input.GroupID, *input.AttachmentID); err != nil {
			return nil, err
		}
	}

	m := &domain.ChatMessage{
		ID:           uuid.New(),
		GroupID:      input.GroupID,
		SenderID:     senderID,
		Content:      strings.TrimSpace(input.Content),
		AttachmentID: input.AttachmentID,
		SentAt:       time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	s.realtime.Publish(realtime.GroupChatTopic(m.GroupID), m)

	s.log.InfoContext(ctx, "chat message sent",
		slog.String("message_id", m.ID.String()),
		slog.String("group_id", m.GroupID.String()),
		slog.String("sender_id", senderID.String()),
	)

	return m, nil
}

// checkAttachment verifies the referenced file exists, is active, and belongs
// to the chat's group.
func (s *Service) checkAttachment(ctx context.Context, groupID, fileID uuid.UUID) error {
	record, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return fmt.Errorf("attachment: %w", err)
	}
	if record.Deleted {
		return fmt.Errorf("attachment: file %s: %w", fileID, domain.ErrNotFound)
	}
	if record.GroupID != groupID {
		return fmt.Errorf("attachment: file %s is not shared in group %s: %w", fileID, groupID, domain.ErrValidation)
	}
	return nil
}
