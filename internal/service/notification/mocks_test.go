package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CreateFunc          func(ctx context.Context, n *domain.Notification) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByRecipientFunc func(ctx context.Context, recipientID uuid.UUID) ([]*domain.Notification, error)
	ListUnreadFunc      func(ctx context.Context, recipientID uuid.UUID) ([]*domain.Notification, error)
	CountUnreadFunc     func(ctx context.Context, recipientID uuid.UUID) (int64, error)
	MarkReadFunc        func(ctx context.Context, id uuid.UUID, readAt time.Time) error
	MarkAllReadFunc     func(ctx context.Context, recipientID uuid.UUID, readAt time.Time) (int, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	DeleteAllFunc       func(ctx context.Context, recipientID uuid.UUID) (int, error)
}

func (m *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFunc == nil {
		panic("notificationRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, n)
}

func (m *notificationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if m.GetByIDFunc == nil {
		panic("notificationRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *notificationRepoMock) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*domain.Notification, error) {
	if m.ListByRecipientFunc == nil {
		panic("notificationRepoMock.ListByRecipientFunc: method is nil but ListByRecipient was just called")
	}
	return m.ListByRecipientFunc(ctx, recipientID)
}

func (m *notificationRepoMock) ListUnread(ctx context.Context, recipientID uuid.UUID) ([]*domain.Notification, error) {
	if m.ListUnreadFunc == nil {
		panic("notificationRepoMock.ListUnreadFunc: method is nil but ListUnread was just called")
	}
	return m.ListUnreadFunc(ctx, recipientID)
}

func (m *notificationRepoMock) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	if m.CountUnreadFunc == nil {
		panic("notificationRepoMock.CountUnreadFunc: method is nil but CountUnread was just called")
	}
	return m.CountUnreadFunc(ctx, recipientID)
}

func (m *notificationRepoMock) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	if m.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but MarkRead was just called")
	}
	return m.MarkReadFunc(ctx, id, readAt)
}

func (m *notificationRepoMock) MarkAllRead(ctx context.Context, recipientID uuid.UUID, readAt time.Time) (int, error) {
	if m.MarkAllReadFunc == nil {
		panic("notificationRepoMock.MarkAllReadFunc: method is nil but MarkAllRead was just called")
	}
	return m.MarkAllReadFunc(ctx, recipientID, readAt)
}

func (m *notificationRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("notificationRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *notificationRepoMock) DeleteAll(ctx context.Context, recipientID uuid.UUID) (int, error) {
	if m.DeleteAllFunc == nil {
		panic("notificationRepoMock.DeleteAllFunc: method is nil but DeleteAll was just called")
	}
	return m.DeleteAllFunc(ctx, recipientID)
}

var _ memberLister = &memberListerMock{}

type memberListerMock struct {
	ListMemberIDsFunc func(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}

func (m *memberListerMock) ListMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	if m.ListMemberIDsFunc == nil {
		panic("memberListerMock.ListMemberIDsFunc: method is nil but ListMemberIDs was just called")
	}
	return m.ListMemberIDsFunc(ctx, groupID)
}

var _ publisher = &publisherMock{}

// publisherMock records every publish for assertions.
type publisherMock struct {
	mu        sync.Mutex
	published []publishedEvent
}

type publishedEvent struct {
	Topic   string
	Payload any
}

func (m *publisherMock) Publish(topic string, payload any) {
	m.mu.Lock()
	m.published = append(m.published, publishedEvent{Topic: topic, Payload: payload})
	m.mu.Unlock()
}

func (m *publisherMock) Published() []publishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]publishedEvent(nil), m.published...)
}
