// Package audit implements the append-only file change log using PostgreSQL.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres"
	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// Repo provides audit entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	insertSQL = `
INSERT INTO file_audit (id, kind, detail, file_id, actor_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	listByFileSQL = `
SELECT id, kind, detail, file_id, actor_id, created_at
FROM file_audit
WHERE file_id = $1
ORDER BY created_at DESC`

	listByGroupSQL = `
SELECT a.id, a.kind, a.detail, a.file_id, a.actor_id, a.created_at
FROM file_audit a
JOIN files f ON f.id = a.file_id
WHERE f.group_id = $1
ORDER BY a.created_at DESC`

	deleteByGroupSQL = `
DELETE FROM file_audit a
USING files f
WHERE f.id = a.file_id AND f.group_id = $1`
)

// Append records a single audit entry. Entries are never updated or removed
// except by the group-deletion cascade.
func (r *Repo) Append(ctx context.Context, e *domain.AuditEntry) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSQL,
		e.ID, string(e.Kind), e.Detail, e.FileID, e.ActorID, e.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "audit entry", e.ID)
	}

	return nil
}

// ListByFile returns all audit entries for a file, newest first.
// Returns an empty slice (not nil) when the file has no entries.
func (r *Repo) ListByFile(ctx context.Context, fileID uuid.UUID) ([]*domain.AuditEntry, error) {
	return r.queryEntries(ctx, "list audit by file", listByFileSQL, fileID)
}

// ListByGroup returns all audit entries across a group's files, newest first.
func (r *Repo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.AuditEntry, error) {
	return r.queryEntries(ctx, "list audit by group", listByGroupSQL, groupID)
}

// DeleteByGroup removes all audit entries referencing the group's files
// (group-deletion cascade). Returns the number of removed rows.
func (r *Repo) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByGroupSQL, groupID)
	if err != nil {
		return 0, fmt.Errorf("delete audit by group: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *Repo) queryEntries(ctx context.Context, op, sql string, args ...any) ([]*domain.AuditEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*domain.AuditEntry
	for rows.Next() {
		var (
			e    domain.AuditEntry
			kind string
		)
		if err := rows.Scan(&e.ID, &kind, &e.Detail, &e.FileID, &e.ActorID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		e.Kind = domain.ChangeKind(kind)
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if result == nil {
		result = []*domain.AuditEntry{}
	}

	return result, nil
}
