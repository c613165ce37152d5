package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

var _ chatRepo = &chatRepoMock{}

type chatRepoMock struct {
	CreateFunc        func(ctx context.Context, m *domain.ChatMessage) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error)
	ListByGroupFunc   func(ctx context.Context, groupID uuid.UUID) ([]*domain.ChatMessage, error)
	UpdateContentFunc func(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *chatRepoMock) Create(ctx context.Context, msg *domain.ChatMessage) error {
	if m.CreateFunc == nil {
		panic("chatRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, msg)
}

func (m *chatRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error) {
	if m.GetByIDFunc == nil {
		panic("chatRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *chatRepoMock) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.ChatMessage, error) {
	if m.ListByGroupFunc == nil {
		panic("chatRepoMock.ListByGroupFunc: method is nil but ListByGroup was just called")
	}
	return m.ListByGroupFunc(ctx, groupID)
}

func (m *chatRepoMock) UpdateContent(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error {
	if m.UpdateContentFunc == nil {
		panic("chatRepoMock.UpdateContentFunc: method is nil but UpdateContent was just called")
	}
	return m.UpdateContentFunc(ctx, id, content, editedAt)
}

func (m *chatRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("chatRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

var _ fileRepo = &fileRepoMock{}

type fileRepoMock struct {
	GetByIDFunc func(ctx context.Context, fileID uuid.UUID) (*domain.FileRecord, error)
}

func (m *fileRepoMock) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileRecord, error) {
	if m.GetByIDFunc == nil {
		panic("fileRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, fileID)
}

var _ accessPolicy = &accessPolicyMock{}

type accessPolicyMock struct {
	IsMemberFunc         func(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	IsAdminOrCreatorFunc func(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
}

func (m *accessPolicyMock) IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	if m.IsMemberFunc == nil {
		panic("accessPolicyMock.IsMemberFunc: method is nil but IsMember was just called")
	}
	return m.IsMemberFunc(ctx, userID, groupID)
}

func (m *accessPolicyMock) IsAdminOrCreator(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	if m.IsAdminOrCreatorFunc == nil {
		panic("accessPolicyMock.IsAdminOrCreatorFunc: method is nil but IsAdminOrCreator was just called")
	}
	return m.IsAdminOrCreatorFunc(ctx, userID, groupID)
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
