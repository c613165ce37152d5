package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// CreateGroup creates a group and its CREATOR membership atomically: no group
// ever exists, even transiently, without exactly one CREATOR member.
//
// The invite token is checked for uniqueness before the insert; if another
// group grabs the same token between the check and the commit, the whole
// transaction is retried with a fresh token.
func (s *Service) CreateGroup(ctx context.Context, creatorID uuid.UUID, input CreateGroupInput) (*domain.Group, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	description := trimOrNil(input.Description)

	for {
		token, err := s.newInviteToken(ctx)
		if err != nil {
			return nil, err
		}

		g := &domain.Group{
			ID:          uuid.New(),
			Name:        name,
			Description: description,
			InviteToken: token,
			CreatorID:   creatorID,
			CreatedAt:   now(),
		}

		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.groups.Create(txCtx, g); err != nil {
				return fmt.Errorf("create group: %w", err)
			}

			m := &domain.Membership{
				ID:       uuid.New(),
				UserID:   creatorID,
				GroupID:  g.ID,
				Role:     domain.RoleCreator,
				JoinedAt: g.CreatedAt,
			}
			if err := s.memberships.Add(txCtx, m); err != nil {
				return fmt.Errorf("add creator membership: %w", err)
			}

			return nil
		})
		if err != nil {
			// The only unique constraint the insert can trip is the
			// invite token; pick a new one and try again.
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue
			}
			return nil, err
		}

		s.log.InfoContext(ctx, "group created",
			slog.String("group_id", g.ID.String()),
			slog.String("creator_id", creatorID.String()),
			slog.String("name", name),
		)

		return g, nil
	}
}
