// Package notification implements the per-recipient notification store using
// PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres"
	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	notificationColumns = `id, kind, message, recipient_id, group_id, created_at, is_read, read_at`

	insertSQL = `
INSERT INTO notifications (id, kind, message, recipient_id, group_id, created_at, is_read, read_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	getByIDSQL = `
SELECT ` + notificationColumns + `
FROM notifications WHERE id = $1`

	listByRecipientSQL = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE recipient_id = $1
ORDER BY created_at DESC`

	listUnreadSQL = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE recipient_id = $1 AND NOT is_read
ORDER BY created_at DESC`

	countUnreadSQL = `
SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND NOT is_read`

	// read_at is written only on the false -> true transition so repeated
	// marks keep the original timestamp.
	markReadSQL = `
UPDATE notifications SET is_read = true, read_at = $2
WHERE id = $1 AND NOT is_read`

	markAllReadSQL = `
UPDATE notifications SET is_read = true, read_at = $2
WHERE recipient_id = $1 AND NOT is_read`

	deleteSQL = `
DELETE FROM notifications WHERE id = $1`

	deleteAllSQL = `
DELETE FROM notifications WHERE recipient_id = $1`

	deleteByGroupSQL = `
DELETE FROM notifications WHERE group_id = $1`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a notification by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNotification(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}

	return n, nil
}

// ListByRecipient returns all notifications for a recipient, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*domain.Notification, error) {
	return r.queryNotifications(ctx, "list notifications", listByRecipientSQL, recipientID)
}

// ListUnread returns unread notifications for a recipient, newest first.
func (r *Repo) ListUnread(ctx context.Context, recipientID uuid.UUID) ([]*domain.Notification, error) {
	return r.queryNotifications(ctx, "list unread notifications", listUnreadSQL, recipientID)
}

// CountUnread returns the number of unread notifications for a recipient.
func (r *Repo) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := querier.QueryRow(ctx, countUnreadSQL, recipientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a single notification row.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSQL,
		n.ID, string(n.Kind), n.Message, n.RecipientID, n.GroupID, n.CreatedAt, n.Read, n.ReadAt)
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}

	return nil
}

// MarkRead transitions a notification to read and stamps read_at. Marking an
// already-read notification is a no-op that preserves the original read_at.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, markReadSQL, id, readAt)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}

	return nil
}

// MarkAllRead marks every unread notification of the recipient read with the
// same read_at. Returns the number of rows transitioned.
func (r *Repo) MarkAllRead(ctx context.Context, recipientID uuid.UUID, readAt time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markAllReadSQL, recipientID, readAt)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// Delete removes a notification by ID.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteAll removes every notification of the recipient.
// Returns the number of removed rows.
func (r *Repo) DeleteAll(ctx context.Context, recipientID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteAllSQL, recipientID)
	if err != nil {
		return 0, fmt.Errorf("delete all notifications: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// DeleteByGroup removes all notifications that reference the group
// (group-deletion cascade). Returns the number of removed rows.
func (r *Repo) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByGroupSQL, groupID)
	if err != nil {
		return 0, fmt.Errorf("delete notifications by group: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func (r *Repo) queryNotifications(ctx context.Context, op, sql string, args ...any) ([]*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if result == nil {
		result = []*domain.Notification{}
	}

	return result, nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var (
		n    domain.Notification
		kind string
	)
	err := row.Scan(&n.ID, &kind, &n.Message, &n.RecipientID, &n.GroupID,
		&n.CreatedAt, &n.Read, &n.ReadAt)
	if err != nil {
		return nil, err
	}
	n.Kind = domain.NotificationKind(kind)
	return &n, nil
}
