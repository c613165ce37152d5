// Package chat implements group chat: sending, listing, editing and deleting
// messages, with realtime pushes on per-group topics.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

type chatRepo interface {
	Create(ctx context.Context, m *domain.ChatMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.ChatMessage, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileRepo interface {
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileRecord, error)
}

type publisher interface {
	Publish(topic string, payload any)
}

type accessPolicy interface {
	IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	IsAdminOrCreator(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
}

// Service provides group chat operations.
type Service struct {
	messages chatRepo
	files    fileRepo
	realtime publisher
	policy   accessPolicy
	log      *slog.Logger
}

// NewService creates a new Chat service.
func NewService(
	log *slog.Logger,
	messages chatRepo,
	files fileRepo,
	realtime publisher,
	policy accessPolicy,
) *Service {
	return &Service{
		messages: messages,
		files:    files,
		realtime: realtime,
		policy:   policy,
		log:      log.With("service", "chat"),
	}
}

// maxMessageLength bounds a chat message body.
const maxMessageLength = 4000

// SendMessageInput holds the parameters for sending a chat message.
type SendMessageInput struct {
	GroupID      uuid.UUID
	Content      string
	AttachmentID *uuid.UUID // optional reference to a file shared in the group
}

// Validate checks all fields and collects all errors.
func (i SendMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > maxMessageLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 4000 characters"})
	}
	if i.AttachmentID != nil && *i.AttachmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "attachment_id", Message: "must not be the zero id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditMessageInput holds the parameters for editing a chat message.
type EditMessageInput struct {
	MessageID uuid.UUID
	Content   string
}

// Validate checks all fields and collects all errors.
func (i EditMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.MessageID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "message_id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > maxMessageLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
