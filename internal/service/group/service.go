// Package group implements the group directory and membership operations:
// creating and joining groups, managing member roles, and the explicit
// cleanup cascade that runs when a group is deleted.
package group

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

type groupRepo interface {
	Create(ctx context.Context, g *domain.Group) error
	GetByID(ctx context.Context, groupID uuid.UUID) (*domain.Group, error)
	GetByInviteToken(ctx context.Context, token string) (*domain.Group, error)
	TokenExists(ctx context.Context, token string) (bool, error)
	Update(ctx context.Context, groupID uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error)
	Delete(ctx context.Context, groupID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error)
	ListCreatedByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error)
	SearchForUser(ctx context.Context, userID uuid.UUID, term string) ([]*domain.Group, error)
}

type membershipRepo interface {
	GetRole(ctx context.Context, userID, groupID uuid.UUID) (domain.Role, error)
	Add(ctx context.Context, m *domain.Membership) error
	Remove(ctx context.Context, userID, groupID uuid.UUID) error
	SetRole(ctx context.Context, userID, groupID uuid.UUID, role domain.Role) error
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]*domain.Membership, error)
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error)
}

type fileRepo interface {
	ListKeysByGroup(ctx context.Context, groupID uuid.UUID) ([]string, error)
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error)
}

type auditRepo interface {
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error)
}

type chatRepo interface {
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error)
}

type notificationRepo interface {
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error)
}

type notifier interface {
	NotifyGroup(ctx context.Context, kind domain.NotificationKind, message string, groupID, excludedUser uuid.UUID) error
	NotifyUser(ctx context.Context, kind domain.NotificationKind, message string, groupID, recipientID uuid.UUID) error
}

type accessPolicy interface {
	IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	IsAdminOrCreator(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
}

type blobStore interface {
	Delete(ctx context.Context, key string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides group directory and membership operations.
type Service struct {
	groups        groupRepo
	memberships   membershipRepo
	files         fileRepo
	audit         auditRepo
	chat          chatRepo
	notifications notificationRepo
	notify        notifier
	policy        accessPolicy
	blobs         blobStore
	tx            txManager
	log           *slog.Logger
}

// NewService creates a new Group service.
func NewService(
	log *slog.Logger,
	groups groupRepo,
	memberships membershipRepo,
	files fileRepo,
	audit auditRepo,
	chat chatRepo,
	notifications notificationRepo,
	notify notifier,
	policy accessPolicy,
	blobs blobStore,
	tx txManager,
) *Service {
	return &Service{
		groups:        groups,
		memberships:   memberships,
		files:         files,
		audit:         audit,
		chat:          chat,
		notifications: notifications,
		notify:        notify,
		policy:        policy,
		blobs:         blobs,
		tx:            tx,
		log:           log.With("service", "group"),
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
