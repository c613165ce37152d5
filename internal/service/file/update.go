package file

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// Update replaces a file's content by recreating it: the old record is
// soft-deleted and a new record with a fresh storage key takes its place, in
// one transaction. Only the original uploader may replace a file.
//
// The old blob is removed best-effort after the commit; storage keys are
// immutable, so the replacement never reuses the old key. Other members are
// notified with FILE_UPDATED.
func (s *Service) Update(ctx context.Context, requesterID uuid.UUID, input UpdateFileInput) (*domain.FileRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.limits.MaxFileSize > 0 && int64(len(input.Data)) > s.limits.MaxFileSize {
		return nil, domain.NewValidationError("data", fmt.Sprintf("file exceeds the %d byte limit", s.limits.MaxFileSize))
	}

	old, err := s.files.GetByID(ctx, input.FileID)
	if err != nil {
		return nil, err
	}
	if old.Deleted {
		return nil, fmt.Errorf("update: file %s: %w", old.ID, domain.ErrNotFound)
	}
	if old.UploaderID != requesterID {
		return nil, fmt.Errorf("update: only the uploader may replace a file: %w", domain.ErrForbidden)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = old.OriginalName
	}

	replacedAt := now()
	replacement := &domain.FileRecord{
		ID:           uuid.New(),
		OriginalName: name,
		StoredKey:    uuid.New().String(),
		Size:         int64(len(input.Data)),
		Type:         typeFromName(name),
		MimeType:     input.MimeType,
		UploaderID:   requesterID,
		GroupID:      old.GroupID,
		UploadedAt:   replacedAt,
		LastModified: replacedAt,
	}

	if err := s.blobs.Put(ctx, replacement.StoredKey, input.Data); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.files.MarkDeleted(txCtx, old.ID, replacedAt); err != nil {
			return fmt.Errorf("retire old record: %w", err)
		}
		if err := s.appendAudit(txCtx, domain.ChangeKindDeleted, "Replaced by a new version", old.ID, requesterID); err != nil {
			return fmt.Errorf("audit replace: %w", err)
		}
		if err := s.files.Create(txCtx, replacement); err != nil {
			return fmt.Errorf("create replacement record: %w", err)
		}
		if err := s.appendAudit(txCtx, domain.ChangeKindUploaded, "File uploaded", replacement.ID, requesterID); err != nil {
			return fmt.Errorf("audit upload: %w", err)
		}
		return nil
	})
	if err != nil {
		if delErr := s.blobs.Delete(ctx, replacement.StoredKey); delErr != nil {
			s.log.WarnContext(ctx, "orphaned blob after failed update",
				slog.String("key", replacement.StoredKey),
				slog.Any("error", delErr),
			)
		}
		return nil, err
	}

	if err := s.blobs.Delete(ctx, old.StoredKey); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "old blob cleanup failed",
			slog.String("key", old.StoredKey),
			slog.Any("error", err),
		)
	}

	message := fmt.Sprintf("File %q was updated", replacement.OriginalName)
	if err := s.notify.NotifyGroup(ctx, domain.NotificationFileUpdated, message, replacement.GroupID, requesterID); err != nil {
		s.log.WarnContext(ctx, "update fan-out failed",
			slog.String("group_id", replacement.GroupID.String()),
			slog.Any("error", err),
		)
	}

	s.log.InfoContext(ctx, "file updated",
		slog.String("old_file_id", old.ID.String()),
		slog.String("file_id", replacement.ID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	return replacement, nil
}
