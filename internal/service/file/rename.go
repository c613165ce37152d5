package file

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// Rename changes a file's display name. The uploader and group admins (or
// the creator) may rename; the storage key never changes. The RENAMED audit
// entry preserves the prior name.
func (s *Service) Rename(ctx context.Context, requesterID uuid.UUID, input RenameFileInput) (*domain.FileRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	record, err := s.files.GetByID(ctx, input.FileID)
	if err != nil {
		return nil, err
	}
	if record.Deleted {
		return nil, fmt.Errorf("rename: file %s: %w", record.ID, domain.ErrNotFound)
	}

	allowed, err := s.policy.CanModifyFile(ctx, requesterID, record.UploaderID, record.GroupID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("rename: %w", domain.ErrForbidden)
	}

	newName := strings.TrimSpace(input.NewName)
	modifiedAt := now()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.files.Rename(txCtx, record.ID, newName, modifiedAt); err != nil {
			return fmt.Errorf("rename file: %w", err)
		}
		detail := "Renamed from: " + record.OriginalName
		if err := s.appendAudit(txCtx, domain.ChangeKindRenamed, detail, record.ID, requesterID); err != nil {
			return fmt.Errorf("audit rename: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "file renamed",
		slog.String("file_id", record.ID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	renamed := *record
	renamed.OriginalName = newName
	renamed.LastModified = modifiedAt

	return &renamed, nil
}
