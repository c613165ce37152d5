package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// DeleteGroup removes a group and everything that belongs to it. Only the
// group's CREATOR may delete it.
//
// The cascade is explicit and runs in a single transaction: chat messages,
// notifications, audit entries, file rows and memberships go first, the group
// row last. Blob contents are removed after the commit, best-effort; a blob
// that cannot be removed is logged and orphaned rather than failing an
// already-committed deletion.
func (s *Service) DeleteGroup(ctx context.Context, requesterID, groupID uuid.UUID) error {
	role, err := s.memberships.GetRole(ctx, requesterID, groupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("delete group: %w", domain.ErrForbidden)
		}
		return err
	}
	if role != domain.RoleCreator {
		return fmt.Errorf("delete group: %w", domain.ErrForbidden)
	}

	// Collect blob keys before the rows disappear.
	keys, err := s.files.ListKeysByGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("list group blobs: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.chat.DeleteByGroup(txCtx, groupID); err != nil {
			return fmt.Errorf("delete chat messages: %w", err)
		}
		if _, err := s.notifications.DeleteByGroup(txCtx, groupID); err != nil {
			return fmt.Errorf("delete notifications: %w", err)
		}
		if _, err := s.audit.DeleteByGroup(txCtx, groupID); err != nil {
			return fmt.Errorf("delete audit entries: %w", err)
		}
		if _, err := s.files.DeleteByGroup(txCtx, groupID); err != nil {
			return fmt.Errorf("delete file records: %w", err)
		}
		if _, err := s.memberships.DeleteByGroup(txCtx, groupID); err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}
		if err := s.groups.Delete(txCtx, groupID); err != nil {
			return fmt.Errorf("delete group: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	orphaned := 0
	for _, key := range keys {
		if err := s.blobs.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrNotFound) {
			orphaned++
			s.log.WarnContext(ctx, "blob cleanup failed",
				slog.String("group_id", groupID.String()),
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}

	s.log.InfoContext(ctx, "group deleted",
		slog.String("group_id", groupID.String()),
		slog.String("requester_id", requesterID.String()),
		slog.Int("blobs", len(keys)),
		slog.Int("orphaned_blobs", orphaned),
	)

	return nil
}
