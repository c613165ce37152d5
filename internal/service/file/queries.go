package file

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// GroupStorageStats summarizes a group's active files.
type GroupStorageStats struct {
	UsedBytes int64
	FileCount int64
	FileTypes []string
}

// GetMetadata returns a file's record for a member of its group. Soft-deleted
// files are still visible by ID; listings are where deletion hides them.
func (s *Service) GetMetadata(ctx context.Context, requesterID, fileID uuid.UUID) (*domain.FileRecord, error) {
	record, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMember(ctx, requesterID, record.GroupID); err != nil {
		return nil, err
	}

	return record, nil
}

// ListGroupFiles returns the group's active files, newest upload first.
func (s *Service) ListGroupFiles(ctx context.Context, requesterID, groupID uuid.UUID) ([]*domain.FileRecord, error) {
	if err := s.requireMember(ctx, requesterID, groupID); err != nil {
		return nil, err
	}
	return s.files.ListActiveByGroup(ctx, groupID)
}

// ListUserFilesInGroup returns the active files a particular uploader has in
// the group, newest upload first.
func (s *Service) ListUserFilesInGroup(ctx context.Context, requesterID, groupID, uploaderID uuid.UUID) ([]*domain.FileRecord, error) {
	if err := s.requireMember(ctx, requesterID, groupID); err != nil {
		return nil, err
	}
	return s.files.ListActiveByUploader(ctx, groupID, uploaderID)
}

// SearchFiles returns the group's active files matching the input filter.
func (s *Service) SearchFiles(ctx context.Context, requesterID uuid.UUID, input SearchFilesInput) ([]*domain.FileRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, requesterID, input.GroupID); err != nil {
		return nil, err
	}
	return s.files.Search(ctx, input.GroupID, domain.FileFilter{
		Search:     input.Search,
		UploaderID: input.UploaderID,
	})
}

// GroupStorageUsed returns the total byte size of the group's active files.
// Always a number, 0 for an empty group.
func (s *Service) GroupStorageUsed(ctx context.Context, requesterID, groupID uuid.UUID) (int64, error) {
	if err := s.requireMember(ctx, requesterID, groupID); err != nil {
		return 0, err
	}
	return s.files.SumSizeByGroup(ctx, groupID)
}

// UserStorageUsed returns the total byte size of the user's active files
// across all their groups. Always a number, 0 when the user has none.
func (s *Service) UserStorageUsed(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.files.SumSizeByUser(ctx, userID)
}

// UserStorageUsedInGroup returns the total byte size of one uploader's active
// files in the group. Always a number, 0 when the uploader has none.
func (s *Service) UserStorageUsedInGroup(ctx context.Context, requesterID, groupID, uploaderID uuid.UUID) (int64, error) {
	if err := s.requireMember(ctx, requesterID, groupID); err != nil {
		return 0, err
	}
	return s.files.SumSizeByUploader(ctx, groupID, uploaderID)
}

// GroupStorageStats returns the group's active usage, file count and the
// distinct file type labels present.
func (s *Service) GetGroupStorageStats(ctx context.Context, requesterID, groupID uuid.UUID) (*GroupStorageStats, error) {
	if err := s.requireMember(ctx, requesterID, groupID); err != nil {
		return nil, err
	}

	used, err := s.files.SumSizeByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("sum group size: %w", err)
	}
	count, err := s.files.CountActiveByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("count group files: %w", err)
	}
	types, err := s.files.DistinctTypesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("group file types: %w", err)
	}

	return &GroupStorageStats{
		UsedBytes: used,
		FileCount: count,
		FileTypes: types,
	}, nil
}

func (s *Service) requireMember(ctx context.Context, userID, groupID uuid.UUID) error {
	isMember, err := s.policy.IsMember(ctx, userID, groupID)
	if err != nil {
		return err
	}
	if !isMember {
		return fmt.Errorf("group %s: %w", groupID, domain.ErrForbidden)
	}
	return nil
}
