package group

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// CreateGroupInput holds the parameters for creating a group.
type CreateGroupInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateGroupInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateGroupInput holds the parameters for updating a group. Token rotation
// is opt-in: the token stays put unless RegenerateToken is set.
type UpdateGroupInput struct {
	GroupID         uuid.UUID
	Name            *string
	Description     *string // nil = don't change; ptr("") = clear
	RegenerateToken bool
}

// Validate checks all fields and collects all errors.
func (i UpdateGroupInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && !i.RegenerateToken {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// JoinGroupInput holds the parameters for joining a group by invite token.
type JoinGroupInput struct {
	InviteToken string
}

// Validate checks all fields and collects all errors.
func (i JoinGroupInput) Validate() error {
	if strings.TrimSpace(i.InviteToken) == "" {
		return domain.NewValidationError("invite_token", "required")
	}
	return nil
}

// AddMemberInput holds the parameters for adding a member directly.
type AddMemberInput struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddMemberInput) Validate() error {
	var errs []domain.FieldError
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveMemberInput holds the parameters for removing a member.
type RemoveMemberInput struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveMemberInput) Validate() error {
	var errs []domain.FieldError
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeMemberRoleInput holds the parameters for changing a member's role.
// Role is free-form input, parsed case-insensitively.
type ChangeMemberRoleInput struct {
	GroupID uuid.UUID
	UserID  uuid.UUID
	Role    string
}

// Validate checks all fields and collects all errors.
func (i ChangeMemberRoleInput) Validate() error {
	var errs []domain.FieldError
	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if strings.TrimSpace(i.Role) == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
