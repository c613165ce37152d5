// Package group implements the Group directory store using PostgreSQL.
// It owns group identity, the invite token, and group-level metadata.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/m1nazuk1/cloud-storage/internal/adapter/postgres"
	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new group repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	insertSQL = `
INSERT INTO groups (id, name, description, invite_token, creator_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	getByIDSQL = `
SELECT id, name, description, invite_token, creator_id, created_at
FROM groups WHERE id = $1`

	getByInviteTokenSQL = `
SELECT id, name, description, invite_token, creator_id, created_at
FROM groups WHERE invite_token = $1`

	tokenExistsSQL = `
SELECT EXISTS (SELECT 1 FROM groups WHERE invite_token = $1)`

	deleteSQL = `
DELETE FROM groups WHERE id = $1`

	listByUserSQL = `
SELECT g.id, g.name, g.description, g.invite_token, g.creator_id, g.created_at
FROM groups g
JOIN memberships m ON m.group_id = g.id
WHERE m.user_id = $1
ORDER BY g.created_at DESC`

	listCreatedByUserSQL = `
SELECT id, name, description, invite_token, creator_id, created_at
FROM groups WHERE creator_id = $1
ORDER BY created_at DESC`

	searchForUserSQL = `
SELECT g.id, g.name, g.description, g.invite_token, g.creator_id, g.created_at
FROM groups g
JOIN memberships m ON m.group_id = g.id
WHERE m.user_id = $1
  AND (g.name ILIKE '%' || $2 || '%' OR g.description ILIKE '%' || $2 || '%')
ORDER BY g.created_at DESC`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a group by primary key.
// Returns domain.ErrNotFound if the group does not exist.
func (r *Repo) GetByID(ctx context.Context, groupID uuid.UUID) (*domain.Group, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGroup(querier.QueryRow(ctx, getByIDSQL, groupID))
	if err != nil {
		return nil, postgres.MapError(err, "group", groupID)
	}

	return g, nil
}

// GetByInviteToken resolves a group by its invite token.
// Returns domain.ErrNotFound if no group holds the token.
func (r *Repo) GetByInviteToken(ctx context.Context, token string) (*domain.Group, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGroup(querier.QueryRow(ctx, getByInviteTokenSQL, token))
	if err != nil {
		return nil, postgres.MapError(err, "group", uuid.Nil)
	}

	return g, nil
}

// TokenExists reports whether any group currently holds the token.
// This is only a pre-check for the generate-and-retry loop; the unique
// constraint on invite_token is the actual guarantee.
func (r *Repo) TokenExists(ctx context.Context, token string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, tokenExistsSQL, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("token exists: %w", err)
	}

	return exists, nil
}

// ListByUser returns all groups the user is a member of, newest first.
// Returns an empty slice (not nil) when the user has no groups.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	return r.queryGroups(ctx, "list groups by user", listByUserSQL, userID)
}

// ListCreatedByUser returns groups created by the user, newest first.
func (r *Repo) ListCreatedByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	return r.queryGroups(ctx, "list created groups", listCreatedByUserSQL, userID)
}

// SearchForUser returns the user's groups whose name or description contains
// term (case-insensitive), newest first.
func (r *Repo) SearchForUser(ctx context.Context, userID uuid.UUID, term string) ([]*domain.Group, error) {
	return r.queryGroups(ctx, "search groups", searchForUserSQL, userID, term)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new group.
// Returns domain.ErrAlreadyExists on an invite token collision.
func (r *Repo) Create(ctx context.Context, g *domain.Group) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSQL,
		g.ID, g.Name, ptrToText(g.Description), g.InviteToken, g.CreatorID, g.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "group", g.ID)
	}

	return nil
}

// Update applies partial update params. nil fields are left unchanged.
// Returns the updated group; domain.ErrNotFound if the group does not exist;
// domain.ErrAlreadyExists if a new invite token collides.
func (r *Repo) Update(ctx context.Context, groupID uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	current, err := scanGroup(querier.QueryRow(ctx, getByIDSQL, groupID))
	if err != nil {
		return nil, postgres.MapError(err, "group", groupID)
	}

	name := current.Name
	if params.Name != nil {
		name = *params.Name
	}

	description := current.Description
	if params.Description != nil {
		if *params.Description == "" {
			// ptr("") means clear (set NULL in DB).
			description = nil
		} else {
			description = params.Description
		}
	}

	token := current.InviteToken
	if params.InviteToken != nil {
		token = *params.InviteToken
	}

	tag, err := querier.Exec(ctx,
		`UPDATE groups SET name = $2, description = $3, invite_token = $4 WHERE id = $1`,
		groupID, name, ptrToText(description), token)
	if err != nil {
		return nil, postgres.MapError(err, "group", groupID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("group %s: %w", groupID, domain.ErrNotFound)
	}

	updated := *current
	updated.Name = name
	updated.Description = description
	updated.InviteToken = token

	return &updated, nil
}

// Delete removes the group row itself. Children (memberships, files, audit,
// notifications, chat) must already be removed by the caller's cascade;
// a remaining reference fails the foreign key check.
func (r *Repo) Delete(ctx context.Context, groupID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, groupID)
	if err != nil {
		return postgres.MapError(err, "group", groupID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("group %s: %w", groupID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryGroups(ctx context.Context, op, sql string, args ...any) ([]*domain.Group, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*domain.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if result == nil {
		result = []*domain.Group{}
	}

	return result, nil
}

func scanGroup(row pgx.Row) (*domain.Group, error) {
	var (
		g           domain.Group
		description pgtype.Text
	)
	if err := row.Scan(&g.ID, &g.Name, &description, &g.InviteToken, &g.CreatorID, &g.CreatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		g.Description = &description.String
	}
	return &g, nil
}

// ptrToText converts a *string to pgtype.Text (nil -> NULL).
func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
