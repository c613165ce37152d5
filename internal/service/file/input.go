package file

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// maxFileNameLength bounds the display name of a file.
const maxFileNameLength = 255

// UploadFileInput holds the parameters for uploading a file into a group.
type UploadFileInput struct {
	GroupID  uuid.UUID
	Name     string
	MimeType string
	Data     []byte
}

// Validate checks all fields and collects all errors.
func (i UploadFileInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxFileNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "data", Message: "empty file"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameFileInput holds the parameters for renaming a file.
type RenameFileInput struct {
	FileID  uuid.UUID
	NewName string
}

// Validate checks all fields and collects all errors.
func (i RenameFileInput) Validate() error {
	var errs []domain.FieldError

	if i.FileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "file_id", Message: "required"})
	}

	name := strings.TrimSpace(i.NewName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "new_name", Message: "required"})
	}
	if len(name) > maxFileNameLength {
		errs = append(errs, domain.FieldError{Field: "new_name", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFileInput holds the parameters for replacing a file's content.
type UpdateFileInput struct {
	FileID   uuid.UUID
	Name     string // new display name; blank keeps the current one
	MimeType string
	Data     []byte
}

// Validate checks all fields and collects all errors.
func (i UpdateFileInput) Validate() error {
	var errs []domain.FieldError

	if i.FileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "file_id", Message: "required"})
	}
	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "data", Message: "empty file"})
	}
	if len(strings.TrimSpace(i.Name)) > maxFileNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchFilesInput holds the parameters for searching a group's files.
type SearchFilesInput struct {
	GroupID    uuid.UUID
	Search     string    // substring of name or type, case-insensitive
	UploaderID uuid.UUID // optional; uuid.Nil means any uploader
}

// Validate checks all fields and collects all errors.
func (i SearchFilesInput) Validate() error {
	if i.GroupID == uuid.Nil {
		return domain.NewValidationError("group_id", "required")
	}
	return nil
}
