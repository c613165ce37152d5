package group

import (
	"context"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	CreateFunc            func(ctx context.Context, g *domain.Group) error
	GetByIDFunc           func(ctx context.Context, groupID uuid.UUID) (*domain.Group, error)
	GetByInviteTokenFunc  func(ctx context.Context, token string) (*domain.Group, error)
	TokenExistsFunc       func(ctx context.Context, token string) (bool, error)
	UpdateFunc            func(ctx context.Context, groupID uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error)
	DeleteFunc            func(ctx context.Context, groupID uuid.UUID) error
	ListByUserFunc        func(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error)
	ListCreatedByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error)
	SearchForUserFunc     func(ctx context.Context, userID uuid.UUID, term string) ([]*domain.Group, error)
}

func (m *groupRepoMock) Create(ctx context.Context, g *domain.Group) error {
	if m.CreateFunc == nil {
		panic("groupRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, g)
}

func (m *groupRepoMock) GetByID(ctx context.Context, groupID uuid.UUID) (*domain.Group, error) {
	if m.GetByIDFunc == nil {
		panic("groupRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, groupID)
}

func (m *groupRepoMock) GetByInviteToken(ctx context.Context, token string) (*domain.Group, error) {
	if m.GetByInviteTokenFunc == nil {
		panic("groupRepoMock.GetByInviteTokenFunc: method is nil but GetByInviteToken was just called")
	}
	return m.GetByInviteTokenFunc(ctx, token)
}

func (m *groupRepoMock) TokenExists(ctx context.Context, token string) (bool, error) {
	if m.TokenExistsFunc == nil {
		panic("groupRepoMock.TokenExistsFunc: method is nil but TokenExists was just called")
	}
	return m.TokenExistsFunc(ctx, token)
}

func (m *groupRepoMock) Update(ctx context.Context, groupID uuid.UUID, params domain.GroupUpdateParams) (*domain.Group, error) {
	if m.UpdateFunc == nil {
		panic("groupRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, groupID, params)
}

func (m *groupRepoMock) Delete(ctx context.Context, groupID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("groupRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, groupID)
}

func (m *groupRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	if m.ListByUserFunc == nil {
		panic("groupRepoMock.ListByUserFunc: method is nil but ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *groupRepoMock) ListCreatedByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Group, error) {
	if m.ListCreatedByUserFunc == nil {
		panic("groupRepoMock.ListCreatedByUserFunc: method is nil but ListCreatedByUser was just called")
	}
	return m.ListCreatedByUserFunc(ctx, userID)
}

func (m *groupRepoMock) SearchForUser(ctx context.Context, userID uuid.UUID, term string) ([]*domain.Group, error) {
	if m.SearchForUserFunc == nil {
		panic("groupRepoMock.SearchForUserFunc: method is nil but SearchForUser was just called")
	}
	return m.SearchForUserFunc(ctx, userID, term)
}

var _ membershipRepo = &membershipRepoMock{}

type membershipRepoMock struct {
	GetRoleFunc       func(ctx context.Context, userID, groupID uuid.UUID) (domain.Role, error)
	AddFunc           func(ctx context.Context, m *domain.Membership) error
	RemoveFunc        func(ctx context.Context, userID, groupID uuid.UUID) error
	SetRoleFunc       func(ctx context.Context, userID, groupID uuid.UUID, role domain.Role) error
	ListMembersFunc   func(ctx context.Context, groupID uuid.UUID) ([]*domain.Membership, error)
	DeleteByGroupFunc func(ctx context.Context, groupID uuid.UUID) (int, error)
}

func (m *membershipRepoMock) GetRole(ctx context.Context, userID, groupID uuid.UUID) (domain.Role, error) {
	if m.GetRoleFunc == nil {
		panic("membershipRepoMock.GetRoleFunc: method is nil but GetRole was just called")
	}
	return m.GetRoleFunc(ctx, userID, groupID)
}

func (m *membershipRepoMock) Add(ctx context.Context, membership *domain.Membership) error {
	if m.AddFunc == nil {
		panic("membershipRepoMock.AddFunc: method is nil but Add was just called")
	}
	return m.AddFunc(ctx, membership)
}

func (m *membershipRepoMock) Remove(ctx context.Context, userID, groupID uuid.UUID) error {
	if m.RemoveFunc == nil {
		panic("membershipRepoMock.RemoveFunc: method is nil but Remove was just called")
	}
	return m.RemoveFunc(ctx, userID, groupID)
}

func (m *membershipRepoMock) SetRole(ctx context.Context, userID, groupID uuid.UUID, role domain.Role) error {
	if m.SetRoleFunc == nil {
		panic("membershipRepoMock.SetRoleFunc: method is nil but SetRole was just called")
	}
	return m.SetRoleFunc(ctx, userID, groupID, role)
}

func (m *membershipRepoMock) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*domain.Membership, error) {
	if m.ListMembersFunc == nil {
		panic("membershipRepoMock.ListMembersFunc: method is nil but ListMembers was just called")
	}
	return m.ListMembersFunc(ctx, groupID)
}

func (m *membershipRepoMock) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	if m.DeleteByGroupFunc == nil {
		panic("membershipRepoMock.DeleteByGroupFunc: method is nil but DeleteByGroup was just called")
	}
	return m.DeleteByGroupFunc(ctx, groupID)
}

var _ fileRepo = &fileRepoMock{}

type fileRepoMock struct {
	ListKeysByGroupFunc func(ctx context.Context, groupID uuid.UUID) ([]string, error)
	DeleteByGroupFunc   func(ctx context.Context, groupID uuid.UUID) (int, error)
}

func (m *fileRepoMock) ListKeysByGroup(ctx context.Context, groupID uuid.UUID) ([]string, error) {
	if m.ListKeysByGroupFunc == nil {
		panic("fileRepoMock.ListKeysByGroupFunc: method is nil but ListKeysByGroup was just called")
	}
	return m.ListKeysByGroupFunc(ctx, groupID)
}

func (m *fileRepoMock) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	if m.DeleteByGroupFunc == nil {
		panic("fileRepoMock.DeleteByGroupFunc: method is nil but DeleteByGroup was just called")
	}
	return m.DeleteByGroupFunc(ctx, groupID)
}

// byGroupDeleterMock serves the audit, chat and notification cleanup
// collaborators, which share the single DeleteByGroup method.
type byGroupDeleterMock struct {
	DeleteByGroupFunc func(ctx context.Context, groupID uuid.UUID) (int, error)
}

func (m *byGroupDeleterMock) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	if m.DeleteByGroupFunc == nil {
		panic("byGroupDeleterMock.DeleteByGroupFunc: method is nil but DeleteByGroup was just called")
	}
	return m.DeleteByGroupFunc(ctx, groupID)
}

var (
	_ auditRepo        = &byGroupDeleterMock{}
	_ chatRepo         = &byGroupDeleterMock{}
	_ notificationRepo = &byGroupDeleterMock{}
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyGroupFunc func(ctx context.Context, kind domain.NotificationKind, message string, groupID, excludedUser uuid.UUID) error
	NotifyUserFunc  func(ctx context.Context, kind domain.NotificationKind, message string, groupID, recipientID uuid.UUID) error
}

func (m *notifierMock) NotifyGroup(ctx context.Context, kind domain.NotificationKind, message string, groupID, excludedUser uuid.UUID) error {
	if m.NotifyGroupFunc == nil {
		panic("notifierMock.NotifyGroupFunc: method is nil but NotifyGroup was just called")
	}
	return m.NotifyGroupFunc(ctx, kind, message, groupID, excludedUser)
}

func (m *notifierMock) NotifyUser(ctx context.Context, kind domain.NotificationKind, message string, groupID, recipientID uuid.UUID) error {
	if m.NotifyUserFunc == nil {
		panic("notifierMock.NotifyUserFunc: method is nil but NotifyUser was just called")
	}
	return m.NotifyUserFunc(ctx, kind, message, groupID, recipientID)
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

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *blobStoreMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, key)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but RunInTx was just called")
	}
	return m.RunInTxFunc(ctx, fn)
}
