package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a shared workspace containing members and files.
//
// The invite token is unique across all groups and mutable: admins can
// regenerate it at any time, which silently invalidates the previous one.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description *string
	InviteToken string
	CreatorID   uuid.UUID
	CreatedAt   time.Time
}

// Membership is the (user, group) relation granting access.
// There is exactly one membership row per pair.
type Membership struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	GroupID  uuid.UUID
	Role     Role
	JoinedAt time.Time
}

// GroupUpdateParams describes a partial group update.
// nil fields are left unchanged.
type GroupUpdateParams struct {
	Name        *string
	Description *string
	InviteToken *string
}
