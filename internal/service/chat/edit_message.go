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

// EditMessage rewrites a message's content. Only the sender may edit their
// own message. The edit timestamp is set and the updated message is pushed to
// the group's chat update topic.
func (s *Service) EditMessage(ctx context.Context, requesterID uuid.UUID, input EditMessageInput) (*domain.ChatMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.messages.GetByID(ctx, input.MessageID)
	if err != nil {
		return nil, err
	}
	if m.SenderID != requesterID {
		return nil, fmt.Errorf("edit message: only the sender may edit: %w", domain.ErrForbidden)
	}

	editedAt := time.Now().UTC()
	content := strings.TrimSpace(input.Content)
	if err := s.messages.UpdateContent(ctx, m.ID, content, editedAt); err != nil {
		return nil, err
	}

	updated := *m
	updated.Content = content
	updated.EditedAt = &editedAt

	s.realtime.Publish(realtime.GroupChatUpdateTopic(m.GroupID), &updated)

	s.log.InfoContext(ctx, "chat message edited",
		slog.String("message_id", m.ID.String()),
		slog.String("group_id", m.GroupID.String()),
	)

	return &updated, nil
}
