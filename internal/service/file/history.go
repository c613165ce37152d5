package file

import (
	"context"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// FileHistory returns a file's audit entries, newest first, for a member of
// its group. History survives soft deletion.
func (s *Service) FileHistory(ctx context.Context, requesterID, fileID uuid.UUID) ([]*domain.AuditEntry, error) {
	record, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMember(ctx, requesterID, record.GroupID); err != nil {
		return nil, err
	}

	return s.audit.ListByFile(ctx, fileID)
}

// GroupFileHistory returns the audit entries across all of a group's files,
// newest first, deleted files included.
func (s *Service) GroupFileHistory(ctx context.Context, requesterID, groupID uuid.UUID) ([]*domain.AuditEntry, error) {
	if err := s.requireMember(ctx, requesterID, groupID); err != nil {
		return nil, err
	}

	return s.audit.ListByGroup(ctx, groupID)
}
