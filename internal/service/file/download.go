package file

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// Download returns a file's metadata and content for a member of its group,
// and records a DOWNLOADED audit entry.
//
// Soft-deleted files remain downloadable on purpose: the record and its
// history survive deletion, and a member following an old link gets the
// content for as long as the blob still exists.
func (s *Service) Download(ctx context.Context, requesterID, fileID uuid.UUID) (*domain.FileRecord, []byte, error) {
	record, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	isMember, err := s.policy.IsMember(ctx, requesterID, record.GroupID)
	if err != nil {
		return nil, nil, err
	}
	if !isMember {
		return nil, nil, fmt.Errorf("download: %w", domain.ErrForbidden)
	}

	data, err := s.blobs.Get(ctx, record.StoredKey)
	if err != nil {
		return nil, nil, fmt.Errorf("read blob: %w", err)
	}

	if err := s.appendAudit(ctx, domain.ChangeKindDownloaded, "", record.ID, requesterID); err != nil {
		// A download that succeeded is not undone over a failed audit write.
		s.log.WarnContext(ctx, "download audit failed",
			slog.String("file_id", record.ID.String()),
			slog.Any("error", err),
		)
	}

	return record, data, nil
}
