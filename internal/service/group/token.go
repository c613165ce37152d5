package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// inviteTokenLength is the number of UUID characters used for an invite token.
const inviteTokenLength = 8

// newInviteToken returns a fresh invite token that no group currently holds.
// The pre-check is advisory; the unique constraint on the groups table is the
// real guarantee, and writers retry on a collision at commit time.
func (s *Service) newInviteToken(ctx context.Context) (string, error) {
	for {
		token := uuid.New().String()[:inviteTokenLength]

		taken, err := s.groups.TokenExists(ctx, token)
		if err != nil {
			return "", fmt.Errorf("check invite token: %w", err)
		}
		if !taken {
			return token, nil
		}
	}
}

// updateWithFreshToken applies the group update with a fresh invite token set
// on params. If another group grabs the same token between the pre-check and
// the commit, the unique constraint reports a collision and the update is
// retried with a new token; the caller never sees the conflict.
func (s *Service) updateWithFreshToken(ctx context.Context, groupID uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error) {
	for {
		token, err := s.newInviteToken(ctx)
		if err != nil {
			return nil, err
		}
		params.InviteToken = &token

		updated, err := s.groups.Update(ctx, groupID, params)
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
}

// RegenerateInviteToken replaces the group's invite token with a fresh one,
// invalidating all outstanding copies of the old token. Requires ADMIN or
// CREATOR in the group.
func (s *Service) RegenerateInviteToken(ctx context.Context, requesterID, groupID uuid.UUID) (*domain.Group, error) {
	allowed, err := s.policy.IsAdminOrCreator(ctx, requesterID, groupID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("regenerate invite token: %w", domain.ErrForbidden)
	}

	updated, err := s.updateWithFreshToken(ctx, groupID, domain.GroupUpdateParams{})
	if err != nil {
		return nil, fmt.Errorf("rotate invite token: %w", err)
	}

	s.log.InfoContext(ctx, "invite token regenerated",
		slog.String("group_id", groupID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	return updated, nil
}
