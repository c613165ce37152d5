package group

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// JoinGroup adds the user to the group identified by the invite token, with
// role MEMBER. An invalid token is indistinguishable from a missing group and
// yields ErrNotFound; joining a group the user already belongs to yields
// ErrAlreadyExists. Existing members are notified with USER_JOINED.
func (s *Service) JoinGroup(ctx context.Context, userID uuid.UUID, input JoinGroupInput) (*domain.Group, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.groups.GetByInviteToken(ctx, strings.TrimSpace(input.InviteToken))
	if err != nil {
		return nil, fmt.Errorf("resolve invite token: %w", err)
	}

	m := &domain.Membership{
		ID:       uuid.New(),
		UserID:   userID,
		GroupID:  g.ID,
		Role:     domain.RoleMember,
		JoinedAt: now(),
	}
	if err := s.memberships.Add(ctx, m); err != nil {
		return nil, fmt.Errorf("join group: %w", err)
	}

	message := fmt.Sprintf("A new member joined group %q", g.Name)
	if err := s.notify.NotifyGroup(ctx, domain.NotificationUserJoined, message, g.ID, userID); err != nil {
		s.log.WarnContext(ctx, "join fan-out failed",
			slog.String("group_id", g.ID.String()),
			slog.Any("error", err),
		)
	}

	s.log.InfoContext(ctx, "user joined group",
		slog.String("group_id", g.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return g, nil
}
