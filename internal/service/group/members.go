package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// ListMembers returns the group's memberships in join order.
// Only group members may see the member list.
func (s *Service) ListMembers(ctx context.Context, requesterID, groupID uuid.UUID) ([]*domain.Membership, error) {
	isMember, err := s.policy.IsMember(ctx, requesterID, groupID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("list members: %w", domain.ErrForbidden)
	}

	return s.memberships.ListMembers(ctx, groupID)
}

// AddMember adds a user to the group directly, with role MEMBER, bypassing
// the invite token. Requires ADMIN or CREATOR. Adding an existing member
// yields ErrAlreadyExists. Other members are notified with USER_JOINED.
func (s *Service) AddMember(ctx context.Context, requesterID uuid.UUID, input AddMemberInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	allowed, err := s.policy.IsAdminOrCreator(ctx, requesterID, input.GroupID)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("add member: %w", domain.ErrForbidden)
	}

	g, err := s.groups.GetByID(ctx, input.GroupID)
	if err != nil {
		return err
	}

	m := &domain.Membership{
		ID:       uuid.New(),
		UserID:   input.UserID,
		GroupID:  input.GroupID,
		Role:     domain.RoleMember,
		JoinedAt: now(),
	}
	if err := s.memberships.Add(ctx, m); err != nil {
		return fmt.Errorf("add member: %w", err)
	}

	message := fmt.Sprintf("A new member joined group %q", g.Name)
	if err := s.notify.NotifyGroup(ctx, domain.NotificationUserJoined, message, g.ID, requesterID); err != nil {
		s.log.WarnContext(ctx, "add-member fan-out failed",
			slog.String("group_id", g.ID.String()),
			slog.Any("error", err),
		)
	}

	s.log.InfoContext(ctx, "member added",
		slog.String("group_id", input.GroupID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	return nil
}

// RemoveMember removes a user from the group. Requires ADMIN or CREATOR.
// The CREATOR can never be removed, and the requester cannot remove
// themselves through this operation. Remaining members are notified with
// USER_REMOVED; the removed user gets a direct notification.
func (s *Service) RemoveMember(ctx context.Context, requesterID uuid.UUID, input RemoveMemberInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if requesterID == input.UserID {
		return fmt.Errorf("remove member: cannot remove yourself: %w", domain.ErrForbidden)
	}

	allowed, err := s.policy.IsAdminOrCreator(ctx, requesterID, input.GroupID)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("remove member: %w", domain.ErrForbidden)
	}

	targetRole, err := s.memberships.GetRole(ctx, input.UserID, input.GroupID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if targetRole == domain.RoleCreator {
		return fmt.Errorf("remove member: the creator cannot be removed: %w", domain.ErrForbidden)
	}

	if err := s.memberships.Remove(ctx, input.UserID, input.GroupID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}

	g, err := s.groups.GetByID(ctx, input.GroupID)
	if err == nil {
		message := fmt.Sprintf("A member was removed from group %q", g.Name)
		if err := s.notify.NotifyGroup(ctx, domain.NotificationUserRemoved, message, g.ID, requesterID); err != nil {
			s.log.WarnContext(ctx, "remove-member fan-out failed",
				slog.String("group_id", g.ID.String()),
				slog.Any("error", err),
			)
		}
		// The removed user is no longer in the member list; tell them directly.
		removedMsg := fmt.Sprintf("You were removed from group %q", g.Name)
		if err := s.notify.NotifyUser(ctx, domain.NotificationUserRemoved, removedMsg, g.ID, input.UserID); err != nil {
			s.log.WarnContext(ctx, "removed-user notification failed",
				slog.String("group_id", g.ID.String()),
				slog.String("user_id", input.UserID.String()),
				slog.Any("error", err),
			)
		}
	}

	s.log.InfoContext(ctx, "member removed",
		slog.String("group_id", input.GroupID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	return nil
}

// ChangeMemberRole switches a member between MEMBER and ADMIN. Requires
// ADMIN or CREATOR. The CREATOR role can be neither granted nor taken away:
// targeting the creator or requesting the CREATOR role is forbidden.
func (s *Service) ChangeMemberRole(ctx context.Context, requesterID uuid.UUID, input ChangeMemberRoleInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return err
	}
	if role == domain.RoleCreator {
		return fmt.Errorf("change role: CREATOR cannot be assigned: %w", domain.ErrForbidden)
	}

	allowed, err := s.policy.IsAdminOrCreator(ctx, requesterID, input.GroupID)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("change role: %w", domain.ErrForbidden)
	}

	targetRole, err := s.memberships.GetRole(ctx, input.UserID, input.GroupID)
	if err != nil {
		return fmt.Errorf("change role: %w", err)
	}
	if targetRole == domain.RoleCreator {
		return fmt.Errorf("change role: the creator's role is fixed: %w", domain.ErrForbidden)
	}
	if targetRole == role {
		return nil
	}

	if err := s.memberships.SetRole(ctx, input.UserID, input.GroupID, role); err != nil {
		return fmt.Errorf("change role: %w", err)
	}

	s.log.InfoContext(ctx, "member role changed",
		slog.String("group_id", input.GroupID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("role", role.String()),
		slog.String("requester_id", requesterID.String()),
	)

	return nil
}
