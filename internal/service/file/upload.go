package file

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// Upload stores a new file in a group the uploader belongs to.
//
// The blob is written first under a fresh storage key; the metadata row and
// its UPLOADED audit entry then commit in one transaction. If the commit
// fails the blob is deleted best-effort so it cannot leak. Other group
// members are notified with FILE_ADDED.
func (s *Service) Upload(ctx context.Context, uploaderID uuid.UUID, input UploadFileInput) (*domain.FileRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.limits.MaxFileSize > 0 && int64(len(input.Data)) > s.limits.MaxFileSize {
		return nil, domain.NewValidationError("data", fmt.Sprintf("file exceeds the %d byte limit", s.limits.MaxFileSize))
	}

	isMember, err := s.policy.IsMember(ctx, uploaderID, input.GroupID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("upload: %w", domain.ErrForbidden)
	}

	if s.limits.MaxGroupSize > 0 {
		used, err := s.files.SumSizeByGroup(ctx, input.GroupID)
		if err != nil {
			return nil, fmt.Errorf("group storage used: %w", err)
		}
		if used+int64(len(input.Data)) > s.limits.MaxGroupSize {
			return nil, fmt.Errorf("upload: group storage limit reached: %w", domain.ErrConflict)
		}
	}

	name := strings.TrimSpace(input.Name)
	record := &domain.FileRecord{
		ID:           uuid.New(),
		OriginalName: name,
		StoredKey:    uuid.New().String(),
		Size:         int64(len(input.Data)),
		Type:         typeFromName(name),
		MimeType:     input.MimeType,
		UploaderID:   uploaderID,
		GroupID:      input.GroupID,
		UploadedAt:   now(),
	}
	record.LastModified = record.UploadedAt

	if err := s.blobs.Put(ctx, record.StoredKey, input.Data); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.files.Create(txCtx, record); err != nil {
			return fmt.Errorf("create file record: %w", err)
		}
		if err := s.appendAudit(txCtx, domain.ChangeKindUploaded, "File uploaded", record.ID, uploaderID); err != nil {
			return fmt.Errorf("audit upload: %w", err)
		}
		return nil
	})
	if err != nil {
		if delErr := s.blobs.Delete(ctx, record.StoredKey); delErr != nil {
			s.log.WarnContext(ctx, "orphaned blob after failed upload",
				slog.String("key", record.StoredKey),
				slog.Any("error", delErr),
			)
		}
		return nil, err
	}

	message := fmt.Sprintf("File %q was added", record.OriginalName)
	if err := s.notify.NotifyGroup(ctx, domain.NotificationFileAdded, message, record.GroupID, uploaderID); err != nil {
		s.log.WarnContext(ctx, "upload fan-out failed",
			slog.String("group_id", record.GroupID.String()),
			slog.Any("error", err),
		)
	}

	s.log.InfoContext(ctx, "file uploaded",
		slog.String("file_id", record.ID.String()),
		slog.String("group_id", record.GroupID.String()),
		slog.String("uploader_id", uploaderID.String()),
		slog.Int64("size", record.Size),
	)

	return record, nil
}
