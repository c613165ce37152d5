// Package file implements the shared-file metadata store using PostgreSQL.
//
// Deleted files stay in the table with deleted = true so the audit trail keeps
// valid references. "Active" queries filter them out; lookups by ID do not.
package file

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres"
	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// Repo provides file metadata persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new file repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const fileColumns = `id, original_name, stored_key, size, file_type, mime_type,
uploader_id, group_id, uploaded_at, last_modified, deleted`

const (
	insertSQL = `
INSERT INTO files (id, original_name, stored_key, size, file_type, mime_type,
                   uploader_id, group_id, uploaded_at, last_modified, deleted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	getByIDSQL = `
SELECT ` + fileColumns + `
FROM files WHERE id = $1`

	listActiveByGroupSQL = `
SELECT ` + fileColumns + `
FROM files
WHERE group_id = $1 AND NOT deleted
ORDER BY uploaded_at DESC`

	listActiveByUploaderSQL = `
SELECT ` + fileColumns + `
FROM files
WHERE group_id = $1 AND uploader_id = $2 AND NOT deleted
ORDER BY uploaded_at DESC`

	renameSQL = `
UPDATE files SET original_name = $2, last_modified = $3
WHERE id = $1 AND NOT deleted`

	markDeletedSQL = `
UPDATE files SET deleted = true, last_modified = $2
WHERE id = $1 AND NOT deleted`

	sumSizeByGroupSQL = `
SELECT COALESCE(SUM(size), 0) FROM files WHERE group_id = $1 AND NOT deleted`

	sumSizeByUploaderSQL = `
SELECT COALESCE(SUM(size), 0)
FROM files WHERE group_id = $1 AND uploader_id = $2 AND NOT deleted`

	sumSizeByUserSQL = `
SELECT COALESCE(SUM(size), 0)
FROM files WHERE uploader_id = $1 AND NOT deleted`

	countActiveByGroupSQL = `
SELECT COUNT(*) FROM files WHERE group_id = $1 AND NOT deleted`

	distinctTypesByGroupSQL = `
SELECT DISTINCT file_type FROM files
WHERE group_id = $1 AND NOT deleted AND file_type <> ''
ORDER BY file_type`

	listKeysByGroupSQL = `
SELECT stored_key FROM files WHERE group_id = $1`

	deleteByGroupSQL = `
DELETE FROM files WHERE group_id = $1`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a file record by primary key, including soft-deleted rows.
// Returns domain.ErrNotFound if the row does not exist.
func (r *Repo) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanFile(querier.QueryRow(ctx, getByIDSQL, fileID))
	if err != nil {
		return nil, postgres.MapError(err, "file", fileID)
	}

	return f, nil
}

// ListActiveByGroup returns the group's non-deleted files, newest upload first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListActiveByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.FileRecord, error) {
	return r.queryFiles(ctx, "list files by group", listActiveByGroupSQL, groupID)
}

// ListActiveByUploader returns the uploader's non-deleted files in the group,
// newest upload first.
func (r *Repo) ListActiveByUploader(ctx context.Context, groupID, uploaderID uuid.UUID) ([]*domain.FileRecord, error) {
	return r.queryFiles(ctx, "list files by uploader", listActiveByUploaderSQL, groupID, uploaderID)
}

// Search returns the group's non-deleted files matching the filter, newest
// upload first. Filter.Search matches name or file type case-insensitively;
// Filter.UploaderID, when set, restricts to a single uploader.
func (r *Repo) Search(ctx context.Context, groupID uuid.UUID, filter domain.FileFilter) ([]*domain.FileRecord, error) {
	builder := r.sb.
		Select("id", "original_name", "stored_key", "size", "file_type", "mime_type",
			"uploader_id", "group_id", "uploaded_at", "last_modified", "deleted").
		From("files").
		Where(sq.Eq{"group_id": groupID}).
		Where("NOT deleted").
		OrderBy("uploaded_at DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"original_name": pattern},
			sq.ILike{"file_type": pattern},
		})
	}
	if filter.UploaderID != uuid.Nil {
		builder = builder.Where(sq.Eq{"uploader_id": filter.UploaderID})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build file search query: %w", err)
	}

	return r.queryFiles(ctx, "search files", sqlStr, args...)
}

// SumSizeByGroup returns the total byte size of the group's active files.
// Returns 0 for an empty group.
func (r *Repo) SumSizeByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	return r.queryInt64(ctx, "sum group size", sumSizeByGroupSQL, groupID)
}

// SumSizeByUploader returns the total byte size of the uploader's active
// files in the group. Returns 0 when the uploader has none.
func (r *Repo) SumSizeByUploader(ctx context.Context, groupID, uploaderID uuid.UUID) (int64, error) {
	return r.queryInt64(ctx, "sum uploader size", sumSizeByUploaderSQL, groupID, uploaderID)
}

// SumSizeByUser returns the total byte size of the user's active files across
// every group. Returns 0 when the user has none.
func (r *Repo) SumSizeByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.queryInt64(ctx, "sum user size", sumSizeByUserSQL, userID)
}

// CountActiveByGroup returns the number of active files in the group.
func (r *Repo) CountActiveByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	return r.queryInt64(ctx, "count group files", countActiveByGroupSQL, groupID)
}

// DistinctTypesByGroup returns the distinct non-empty file type labels among
// the group's active files, sorted.
func (r *Repo) DistinctTypesByGroup(ctx context.Context, groupID uuid.UUID) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, distinctTypesByGroupSQL, groupID)
	if err != nil {
		return nil, fmt.Errorf("distinct file types: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("distinct file types: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("distinct file types: %w", err)
	}

	if types == nil {
		types = []string{}
	}

	return types, nil
}

// ListKeysByGroup returns the blob keys of all the group's files, deleted
// included. Used to clean the blob store during group deletion.
func (r *Repo) ListKeysByGroup(ctx context.Context, groupID uuid.UUID) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listKeysByGroupSQL, groupID)
	if err != nil {
		return nil, fmt.Errorf("list blob keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("list blob keys: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blob keys: %w", err)
	}

	if keys == nil {
		keys = []string{}
	}

	return keys, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new file record.
// Returns domain.ErrAlreadyExists on a stored key collision.
func (r *Repo) Create(ctx context.Context, f *domain.FileRecord) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSQL,
		f.ID, f.OriginalName, f.StoredKey, f.Size, f.Type, f.MimeType,
		f.UploaderID, f.GroupID, f.UploadedAt, f.LastModified, f.Deleted)
	if err != nil {
		return postgres.MapError(err, "file", f.ID)
	}

	return nil
}

// Rename updates the display name of an active file and bumps last_modified.
// Returns domain.ErrNotFound if the file is missing or already deleted.
func (r *Repo) Rename(ctx context.Context, fileID uuid.UUID, newName string, modifiedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, renameSQL, fileID, newName, modifiedAt)
	if err != nil {
		return postgres.MapError(err, "file", fileID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("file %s: %w", fileID, domain.ErrNotFound)
	}

	return nil
}

// MarkDeleted soft-deletes an active file and bumps last_modified.
// Returns domain.ErrNotFound if the file is missing or already deleted.
func (r *Repo) MarkDeleted(ctx context.Context, fileID uuid.UUID, modifiedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markDeletedSQL, fileID, modifiedAt)
	if err != nil {
		return postgres.MapError(err, "file", fileID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("file %s: %w", fileID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByGroup hard-deletes all file rows of a group (group-deletion
// cascade). Audit rows referencing them must be removed first.
// Returns the number of removed rows.
func (r *Repo) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByGroupSQL, groupID)
	if err != nil {
		return 0, fmt.Errorf("delete files by group: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryFiles(ctx context.Context, op, sqlStr string, args ...any) ([]*domain.FileRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*domain.FileRecord
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if result == nil {
		result = []*domain.FileRecord{}
	}

	return result, nil
}

func (r *Repo) queryInt64(ctx context.Context, op, sqlStr string, args ...any) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := querier.QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func scanFile(row pgx.Row) (*domain.FileRecord, error) {
	var f domain.FileRecord
	err := row.Scan(&f.ID, &f.OriginalName, &f.StoredKey, &f.Size, &f.Type, &f.MimeType,
		&f.UploaderID, &f.GroupID, &f.UploadedAt, &f.LastModified, &f.Deleted)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
