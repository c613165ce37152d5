package group

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// GetGroup returns a group's details. Only members may see them.
func (s *Service) GetGroup(ctx context.Context, requesterID, groupID uuid.UUID) (*domain.Group, error) {
	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.policy.IsMember(ctx, requesterID, groupID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("get group: %w", domain.ErrForbidden)
	}

	return g, nil
}

// ListUserGroups returns all groups the requester belongs to, newest first.
func (s *Service) ListUserGroups(ctx context.Context, requesterID uuid.UUID) ([]*domain.Group, error) {
	return s.groups.ListByUser(ctx, requesterID)
}

// ListCreatedGroups returns the groups the requester created, newest first.
func (s *Service) ListCreatedGroups(ctx context.Context, requesterID uuid.UUID) ([]*domain.Group, error) {
	return s.groups.ListCreatedByUser(ctx, requesterID)
}

// SearchGroups searches the requester's groups by name or description
// substring, case-insensitively. A blank term returns all their groups.
func (s *Service) SearchGroups(ctx context.Context, requesterID uuid.UUID, term string) ([]*domain.Group, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.groups.ListByUser(ctx, requesterID)
	}
	return s.groups.SearchForUser(ctx, requesterID, term)
}
