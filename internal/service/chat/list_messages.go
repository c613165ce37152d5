package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// ListGroupMessages returns the group's chat history, oldest first, for a
// member of the group.
func (s *Service) ListGroupMessages(ctx context.Context, requesterID, groupID uuid.UUID) ([]*domain.ChatMessage, error) {
	isMember, err := s.policy.IsMember(ctx, requesterID, groupID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("group %s: %w", groupID, domain.ErrForbidden)
	}

	return s.messages.ListByGroup(ctx, groupID)
}
