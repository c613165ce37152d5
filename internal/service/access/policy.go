// Package access holds the authorization decisions shared by every service.
//
// All membership and file permission checks funnel through Policy so the
// rules live in exactly one place. The policy is pure: it reads roles and
// decides, it never mutates anything.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

type roleReader interface {
	GetRole(ctx context.Context, userID, groupID uuid.UUID) (domain.Role, error)
}

// Policy answers authorization questions over the membership store.
type Policy struct {
	roles roleReader
}

// NewPolicy creates a Policy backed by the given role reader.
func NewPolicy(roles roleReader) *Policy {
	return &Policy{roles: roles}
}

// IsMember reports whether the user holds any role in the group.
// A missing membership row is an ordinary "no", not an error.
func (p *Policy) IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	_, err := p.roles.GetRole(ctx, userID, groupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read role: %w", err)
	}
	return true, nil
}

// IsAdminOrCreator reports whether the user holds ADMIN or CREATOR in the group.
func (p *Policy) IsAdminOrCreator(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	role, err := p.roles.GetRole(ctx, userID, groupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read role: %w", err)
	}
	return role.IsAdminOrCreator(), nil
}

// CanModifyFile reports whether the requester may rename or delete a file
// uploaded by uploaderID into the group: the uploader always can, and so can
// any group admin or the creator.
func (p *Policy) CanModifyFile(ctx context.Context, requesterID, uploaderID, groupID uuid.UUID) (bool, error) {
	if requesterID == uploaderID {
		return true, nil
	}
	return p.IsAdminOrCreator(ctx, requesterID, groupID)
}
