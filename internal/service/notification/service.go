// Package notification implements notification fan-out and the
// recipient-scoped notification operations.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*domain.Notification, error)
	ListUnread(ctx context.Context, recipientID uuid.UUID) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, readAt time.Time) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, recipientID uuid.UUID) (int, error)
}

type memberLister interface {
	ListMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}

type publisher interface {
	Publish(topic string, payload any)
}

// Service provides notification operations.
type Service struct {
	notifications notificationRepo
	members       memberLister
	realtime      publisher
	log           *slog.Logger
}

// NewService creates a new Notification service.
func NewService(
	log *slog.Logger,
	notifications notificationRepo,
	members memberLister,
	realtime publisher,
) *Service {
	return &Service{
		notifications: notifications,
		members:       members,
		realtime:      realtime,
		log:           log.With("service", "notification"),
	}
}
