package domain

import "strings"

// Role represents a user's role inside a group.
//
// CREATOR is assigned exactly once, at group creation, and can never be
// granted or revoked afterwards. ADMIN and MEMBER convert into each other
// freely (subject to permission checks in the service layer).
type Role string

const (
	RoleCreator Role = "CREATOR"
	RoleAdmin   Role = "ADMIN"
	RoleMember  Role = "MEMBER"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleCreator, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// IsAdminOrCreator reports whether the role grants group administration rights.
func (r Role) IsAdminOrCreator() bool {
	return r == RoleAdmin || r == RoleCreator
}

// ParseRole converts free-form input into a Role.
// Input is case-insensitive; unrecognized values fail with ErrValidation.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", NewValidationError("role", "unknown role: "+s)
	}
	return r, nil
}

// ChangeKind represents the kind of file mutation recorded in the audit trail.
type ChangeKind string

const (
	ChangeKindUploaded   ChangeKind = "UPLOADED"
	ChangeKindRenamed    ChangeKind = "RENAMED"
	ChangeKindDeleted    ChangeKind = "DELETED"
	ChangeKindDownloaded ChangeKind = "DOWNLOADED"
)

func (k ChangeKind) String() string { return string(k) }

func (k ChangeKind) IsValid() bool {
	switch k {
	case ChangeKindUploaded, ChangeKindRenamed, ChangeKindDeleted, ChangeKindDownloaded:
		return true
	}
	return false
}

// NotificationKind identifies the group event a notification describes.
type NotificationKind string

const (
	NotificationFileAdded    NotificationKind = "FILE_ADDED"
	NotificationFileDeleted  NotificationKind = "FILE_DELETED"
	NotificationFileUpdated  NotificationKind = "FILE_UPDATED"
	NotificationUserJoined   NotificationKind = "USER_JOINED"
	NotificationUserLeft     NotificationKind = "USER_LEFT"
	NotificationUserRemoved  NotificationKind = "USER_REMOVED"
	NotificationGroupUpdated NotificationKind = "GROUP_UPDATED"
)

func (k NotificationKind) String() string { return string(k) }

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationFileAdded, NotificationFileDeleted, NotificationFileUpdated,
		NotificationUserJoined, NotificationUserLeft, NotificationUserRemoved,
		NotificationGroupUpdated:
		return true
	}
	return false
}
