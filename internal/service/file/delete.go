package file

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// Delete soft-deletes a file: the record and its audit history survive, but
// the file disappears from active listings and storage totals. The uploader
// and group admins (or the creator) may delete. Deleting an already-deleted
// file yields ErrNotFound. Other members are notified with FILE_DELETED.
//
// The blob is kept so the history stays materially complete; it is removed
// only by the group-deletion cascade.
func (s *Service) Delete(ctx context.Context, requesterID, fileID uuid.UUID) error {
	record, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if record.Deleted {
		return fmt.Errorf("delete: file %s: %w", record.ID, domain.ErrNotFound)
	}

	allowed, err := s.policy.CanModifyFile(ctx, requesterID, record.UploaderID, record.GroupID)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("delete: %w", domain.ErrForbidden)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.files.MarkDeleted(txCtx, record.ID, now()); err != nil {
			return fmt.Errorf("mark deleted: %w", err)
		}
		if err := s.appendAudit(txCtx, domain.ChangeKindDeleted, "File deleted", record.ID, requesterID); err != nil {
			return fmt.Errorf("audit delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	message := fmt.Sprintf("File %q was deleted", record.OriginalName)
	if err := s.notify.NotifyGroup(ctx, domain.NotificationFileDeleted, message, record.GroupID, requesterID); err != nil {
		s.log.WarnContext(ctx, "delete fan-out failed",
			slog.String("group_id", record.GroupID.String()),
			slog.Any("error", err),
		)
	}

	s.log.InfoContext(ctx, "file deleted",
		slog.String("file_id", record.ID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	return nil
}
