// Package chat implements the group chat message store using PostgreSQL.
package chat

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

// Repo provides chat message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new chat repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	messageColumns = `id, group_id, sender_id, content, attachment_id, sent_at, edited_at`

	insertSQL = `
INSERT INTO chat_messages (id, group_id, sender_id, content, attachment_id, sent_at, edited_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	getByIDSQL = `
SELECT ` + messageColumns + `
FROM chat_messages WHERE id = $1`

	listByGroupSQL = `
SELECT ` + messageColumns + `
FROM chat_messages
WHERE group_id = $1
ORDER BY sent_at`

	updateContentSQL = `
UPDATE chat_messages SET content = $2, edited_at = $3 WHERE id = $1`

	deleteSQL = `
DELETE FROM chat_messages WHERE id = $1`

	deleteByGroupSQL = `
DELETE FROM chat_messages WHERE group_id = $1`
)

// GetByID returns a message by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMessage(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "chat message", id)
	}

	return m, nil
}

// ListByGroup returns the group's messages in send order (oldest first).
// Returns an empty slice (not nil) when the group has no messages.
func (r *Repo) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.ChatMessage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByGroupSQL, groupID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var result []*domain.ChatMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("list chat messages: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}

	if result == nil {
		result = []*domain.ChatMessage{}
	}

	return result, nil
}

// Create inserts a new chat message.
func (r *Repo) Create(ctx context.Context, m *domain.ChatMessage) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSQL,
		m.ID, m.GroupID, m.SenderID, m.Content, m.AttachmentID, m.SentAt, m.EditedAt)
	if err != nil {
		return postgres.MapError(err, "chat message", m.ID)
	}

	return nil
}

// UpdateContent replaces the message body and stamps edited_at.
// Returns domain.ErrNotFound if the message does not exist.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateContentSQL, id, content, editedAt)
	if err != nil {
		return postgres.MapError(err, "chat message", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chat message %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a message by ID.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "chat message", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chat message %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByGroup removes all messages of a group (group-deletion cascade).
// Returns the number of removed rows.
func (r *Repo) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByGroupSQL, groupID)
	if err != nil {
		return 0, fmt.Errorf("delete chat messages by group: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func scanMessage(row pgx.Row) (*domain.ChatMessage, error) {
	var m domain.ChatMessage
	err := row.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.Content,
		&m.AttachmentID, &m.SentAt, &m.EditedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
