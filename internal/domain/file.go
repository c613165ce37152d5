package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord is the metadata row for one uploaded file.
//
// StoredKey is the blob store key: globally unique, immutable after creation.
// Deleted marks a soft delete: the row and its audit history persist, but the
// record disappears from active-file views and storage sums.
type FileRecord struct {
	ID           uuid.UUID
	OriginalName string
	StoredKey    string
	Size         int64
	Type         string // extension-derived, e.g. "pdf"
	MimeType     string
	UploaderID   uuid.UUID
	GroupID      uuid.UUID
	UploadedAt   time.Time
	LastModified time.Time
	Deleted      bool
}

// AuditEntry records one file-affecting action. Entries are append-only and
// survive the soft deletion of their file; only group deletion removes them.
type AuditEntry struct {
	ID        uuid.UUID
	Kind      ChangeKind
	Detail    string
	FileID    uuid.UUID
	ActorID   uuid.UUID
	CreatedAt time.Time
}

// FileFilter defines parameters for searching active files inside a group.
type FileFilter struct {
	// Search performs a case-insensitive substring match against the
	// original name and the extension-derived type.
	Search string

	// UploaderID restricts results to files uploaded by one user.
	// uuid.Nil means no uploader filter.
	UploaderID uuid.UUID
}
