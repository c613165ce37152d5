// Package membership implements the Membership store using PostgreSQL.
// It maintains the (user, group) → role mapping with one row per pair.
//
// The store is intentionally policy-unaware: it will happily mutate or remove
// a CREATOR row. Protecting the creator membership is the service layer's job.
package membership

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

// Repo provides membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new membership repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	getRoleSQL = `
SELECT role FROM memberships WHERE user_id = $1 AND group_id = $2`

	getByPairSQL = `
SELECT id, user_id, group_id, role, joined_at
FROM memberships
WHERE user_id = $1 AND group_id = $2`

	insertSQL = `
INSERT INTO memberships (id, user_id, group_id, role, joined_at)
VALUES ($1, $2, $3, $4, $5)`

	removeSQL = `
DELETE FROM memberships WHERE user_id = $1 AND group_id = $2`

	setRoleSQL = `
UPDATE memberships SET role = $3 WHERE user_id = $1 AND group_id = $2`

	listMembersSQL = `
SELECT id, user_id, group_id, role, joined_at
FROM memberships
WHERE group_id = $1
ORDER BY joined_at`

	listMemberIDsSQL = `
SELECT user_id FROM memberships WHERE group_id = $1`

	deleteByGroupSQL = `
DELETE FROM memberships WHERE group_id = $1`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetRole returns the role a user holds in a group.
// Returns domain.ErrNotFound if the user is not a member.
func (r *Repo) GetRole(ctx context.Context, userID, groupID uuid.UUID) (domain.Role, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var role string
	if err := querier.QueryRow(ctx, getRoleSQL, userID, groupID).Scan(&role); err != nil {
		return "", postgres.MapError(err, "membership", userID)
	}

	return domain.Role(role), nil
}

// Get returns the full membership row for a (user, group) pair.
// Returns domain.ErrNotFound if the user is not a member.
func (r *Repo) Get(ctx context.Context, userID, groupID uuid.UUID) (*domain.Membership, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMembership(querier.QueryRow(ctx, getByPairSQL, userID, groupID))
	if err != nil {
		return nil, postgres.MapError(err, "membership", userID)
	}

	return m, nil
}

// IsMember reports whether the user holds any role in the group.
func (r *Repo) IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := querier.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM memberships WHERE user_id = $1 AND group_id = $2)`,
		userID, groupID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("membership exists: %w", err)
	}

	return exists, nil
}

// IsAdminOrCreator reports whether the user holds ADMIN or CREATOR in the group.
func (r *Repo) IsAdminOrCreator(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := querier.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM memberships
		 WHERE user_id = $1 AND group_id = $2 AND role IN ('ADMIN', 'CREATOR'))`,
		userID, groupID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("membership admin check: %w", err)
	}

	return exists, nil
}

// ListMembers returns all memberships of a group ordered by join time.
// Returns an empty slice (not nil) when the group has no members.
func (r *Repo) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*domain.Membership, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMembersSQL, groupID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var result []*domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("list members: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	if result == nil {
		result = []*domain.Membership{}
	}

	return result, nil
}

// ListMemberIDs returns the user IDs of all members of a group.
// Returns an empty slice (not nil) when the group has no members.
func (r *Repo) ListMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMemberIDsSQL, groupID)
	if err != nil {
		return nil, fmt.Errorf("list member ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list member ids: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list member ids: %w", err)
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Add inserts a membership row for the pair.
// Returns domain.ErrAlreadyExists if the user is already a member.
func (r *Repo) Add(ctx context.Context, m *domain.Membership) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSQL, m.ID, m.UserID, m.GroupID, string(m.Role), m.JoinedAt)
	if err != nil {
		return postgres.MapError(err, "membership", m.UserID)
	}

	return nil
}

// Remove deletes the membership row for the pair.
// Returns domain.ErrNotFound if the user is not a member.
func (r *Repo) Remove(ctx context.Context, userID, groupID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, removeSQL, userID, groupID)
	if err != nil {
		return postgres.MapError(err, "membership", userID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("membership %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// SetRole updates the role for the pair.
// Returns domain.ErrNotFound if the user is not a member.
func (r *Repo) SetRole(ctx context.Context, userID, groupID uuid.UUID, role domain.Role) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setRoleSQL, userID, groupID, string(role))
	if err != nil {
		return postgres.MapError(err, "membership", userID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("membership %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByGroup removes all memberships of a group (group-deletion cascade).
// Returns the number of removed rows.
func (r *Repo) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByGroupSQL, groupID)
	if err != nil {
		return 0, fmt.Errorf("delete memberships by group: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanMembership(row pgx.Row) (*domain.Membership, error) {
	var (
		m    domain.Membership
		role string
	)
	if err := row.Scan(&m.ID, &m.UserID, &m.GroupID, &role, &m.JoinedAt); err != nil {
		return nil, err
	}
	m.Role = domain.Role(role)
	return &m, nil
}
