// Package file implements the shared-file lifecycle: upload, download,
// rename, soft delete and replacement, with an append-only audit trail
// recorded in the same transaction as each mutation.
package file

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

type fileRepo interface {
	Create(ctx context.Context, f *domain.FileRecord) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileRecord, error)
	ListActiveByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.FileRecord, error)
	ListActiveByUploader(ctx context.Context, groupID, uploaderID uuid.UUID) ([]*domain.FileRecord, error)
	Search(ctx context.Context, groupID uuid.UUID, filter domain.FileFilter) ([]*domain.FileRecord, error)
	SumSizeByGroup(ctx context.Context, groupID uuid.UUID) (int64, error)
	SumSizeByUploader(ctx context.Context, groupID, uploaderID uuid.UUID) (int64, error)
	SumSizeByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountActiveByGroup(ctx context.Context, groupID uuid.UUID) (int64, error)
	DistinctTypesByGroup(ctx context.Context, groupID uuid.UUID) ([]string, error)
	Rename(ctx context.Context, fileID uuid.UUID, newName string, modifiedAt time.Time) error
	MarkDeleted(ctx context.Context, fileID uuid.UUID, modifiedAt time.Time) error
}

type auditRepo interface {
	Append(ctx context.Context, e *domain.AuditEntry) error
	ListByFile(ctx context.Context, fileID uuid.UUID) ([]*domain.AuditEntry, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.AuditEntry, error)
}

type blobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type notifier interface {
	NotifyGroup(ctx context.Context, kind domain.NotificationKind, message string, groupID, excludedUser uuid.UUID) error
}

type accessPolicy interface {
	IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	CanModifyFile(ctx context.Context, requesterID, uploaderID, groupID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Limits bounds uploads. Zero means unlimited.
type Limits struct {
	MaxFileSize  int64 // bytes per file
	MaxGroupSize int64 // bytes per group, active files only
}

// Service provides file lifecycle operations.
type Service struct {
	files  fileRepo
	audit  auditRepo
	blobs  blobStore
	notify notifier
	policy accessPolicy
	tx     txManager
	limits Limits
	log    *slog.Logger
}

// NewService creates a new File service.
func NewService(
	log *slog.Logger,
	files fileRepo,
	audit auditRepo,
	blobs blobStore,
	notify notifier,
	policy accessPolicy,
	tx txManager,
	limits Limits,
) *Service {
	return &Service{
		files:  files,
		audit:  audit,
		blobs:  blobs,
		notify: notify,
		policy: policy,
		tx:     tx,
		limits: limits,
		log:    log.With("service", "file"),
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// typeFromName derives the lowercase extension label from a file name,
// without the dot. "report.PDF" -> "pdf", "README" -> "".
func typeFromName(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// appendAudit writes one audit entry for the file mutation.
func (s *Service) appendAudit(ctx context.Context, kind domain.ChangeKind, detail string, fileID, actorID uuid.UUID) error {
	return s.audit.Append(ctx, &domain.AuditEntry{
		ID:        uuid.New(),
		Kind:      kind,
		Detail:    detail,
		FileID:    fileID,
		ActorID:   actorID,
		CreatedAt: now(),
	})
}
