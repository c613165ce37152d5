package group

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// UpdateGroup applies a partial update to the group's name and description,
// and rotates the invite token when the input asks for it. Requires ADMIN or
// CREATOR. Members other than the requester are notified with GROUP_UPDATED.
func (s *Service) UpdateGroup(ctx context.Context, requesterID uuid.UUID, input UpdateGroupInput) (*domain.Group, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	allowed, err := s.policy.IsAdminOrCreator(ctx, requesterID, input.GroupID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("update group: %w", domain.ErrForbidden)
	}

	params := domain.GroupUpdateParams{
		Description: input.Description,
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}

	var updated *domain.Group
	if input.RegenerateToken {
		updated, err = s.updateWithFreshToken(ctx, input.GroupID, params)
	} else {
		updated, err = s.groups.Update(ctx, input.GroupID, params)
	}
	if err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}

	message := fmt.Sprintf("Group %q was updated", updated.Name)
	if err := s.notify.NotifyGroup(ctx, domain.NotificationGroupUpdated, message, updated.ID, requesterID); err != nil {
		s.log.WarnContext(ctx, "group update fan-out failed",
			slog.String("group_id", updated.ID.String()),
			slog.Any("error", err),
		)
	}

	s.log.InfoContext(ctx, "group updated",
		slog.String("group_id", updated.ID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	return updated, nil
}
