package file

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

var _ fileRepo = &fileRepoMock{}

type fileRepoMock struct {
	CreateFunc               func(ctx context.Context, f *domain.FileRecord) error
	GetByIDFunc              func(ctx context.Context, fileID uuid.UUID) (*domain.FileRecord, error)
	ListActiveByGroupFunc    func(ctx context.Context, groupID uuid.UUID) ([]*domain.FileRecord, error)
	ListActiveByUploaderFunc func(ctx context.Context, groupID, uploaderID uuid.UUID) ([]*domain.FileRecord, error)
	SearchFunc               func(ctx context.Context, groupID uuid.UUID, filter domain.FileFilter) ([]*domain.FileRecord, error)
	SumSizeByGroupFunc       func(ctx context.Context, groupID uuid.UUID) (int64, error)
	SumSizeByUploaderFunc    func(ctx context.Context, groupID, uploaderID uuid.UUID) (int64, error)
	SumSizeByUserFunc        func(ctx context.Context, userID uuid.UUID) (int64, error)
	CountActiveByGroupFunc   func(ctx context.Context, groupID uuid.UUID) (int64, error)
	DistinctTypesByGroupFunc func(ctx context.Context, groupID uuid.UUID) ([]string, error)
	RenameFunc               func(ctx context.Context, fileID uuid.UUID, newName string, modifiedAt time.Time) error
	MarkDeletedFunc          func(ctx context.Context, fileID uuid.UUID, modifiedAt time.Time) error
}

func (m *fileRepoMock) Create(ctx context.Context, f *domain.FileRecord) error {
	if m.CreateFunc == nil {
		panic("fileRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, f)
}

func (m *fileRepoMock) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileRecord, error) {
	if m.GetByIDFunc == nil {
		panic("fileRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, fileID)
}

func (m *fileRepoMock) ListActiveByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.FileRecord, error) {
	if m.ListActiveByGroupFunc == nil {
		panic("fileRepoMock.ListActiveByGroupFunc: method is nil but ListActiveByGroup was just called")
	}
	return m.ListActiveByGroupFunc(ctx, groupID)
}

func (m *fileRepoMock) ListActiveByUploader(ctx context.Context, groupID, uploaderID uuid.UUID) ([]*domain.FileRecord, error) {
	if m.ListActiveByUploaderFunc == nil {
		panic("fileRepoMock.ListActiveByUploaderFunc: method is nil but ListActiveByUploader was just called")
	}
	return m.ListActiveByUploaderFunc(ctx, groupID, uploaderID)
}

func (m *fileRepoMock) Search(ctx context.Context, groupID uuid.UUID, filter domain.FileFilter) ([]*domain.FileRecord, error) {
	if m.SearchFunc == nil {
		panic("fileRepoMock.SearchFunc: method is nil but Search was just called")
	}
	return m.SearchFunc(ctx, groupID, filter)
}

func (m *fileRepoMock) SumSizeByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	if m.SumSizeByGroupFunc == nil {
		panic("fileRepoMock.SumSizeByGroupFunc: method is nil but SumSizeByGroup was just called")
	}
	return m.SumSizeByGroupFunc(ctx, groupID)
}

func (m *fileRepoMock) SumSizeByUploader(ctx context.Context, groupID, uploaderID uuid.UUID) (int64, error) {
	if m.SumSizeByUploaderFunc == nil {
		panic("fileRepoMock.SumSizeByUploaderFunc: method is nil but SumSizeByUploader was just called")
	}
	return m.SumSizeByUploaderFunc(ctx, groupID, uploaderID)
}

func (m *fileRepoMock) SumSizeByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.SumSizeByUserFunc == nil {
		panic("fileRepoMock.SumSizeByUserFunc: method is nil but SumSizeByUser was just called")
	}
	return m.SumSizeByUserFunc(ctx, userID)
}

func (m *fileRepoMock) CountActiveByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	if m.CountActiveByGroupFunc == nil {
		panic("fileRepoMock.CountActiveByGroupFunc: method is nil but CountActiveByGroup was just called")
	}
	return m.CountActiveByGroupFunc(ctx, groupID)
}

func (m *fileRepoMock) DistinctTypesByGroup(ctx context.Context, groupID uuid.UUID) ([]string, error) {
	if m.DistinctTypesByGroupFunc == nil {
		panic("fileRepoMock.DistinctTypesByGroupFunc: method is nil but DistinctTypesByGroup was just called")
	}
	return m.DistinctTypesByGroupFunc(ctx, groupID)
}

func (m *fileRepoMock) Rename(ctx context.Context, fileID uuid.UUID, newName string, modifiedAt time.Time) error {
	if m.RenameFunc == nil {
		panic("fileRepoMock.RenameFunc: method is nil but Rename was just called")
	}
	return m.RenameFunc(ctx, fileID, newName, modifiedAt)
}

func (m *fileRepoMock) MarkDeleted(ctx context.Context, fileID uuid.UUID, modifiedAt time.Time) error {
	if m.MarkDeletedFunc == nil {
		panic("fileRepoMock.MarkDeletedFunc: method is nil but MarkDeleted was just called")
	}
	return m.MarkDeletedFunc(ctx, fileID, modifiedAt)
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	AppendFunc      func(ctx context.Context, e *domain.AuditEntry) error
	ListByFileFunc  func(ctx context.Context, fileID uuid.UUID) ([]*domain.AuditEntry, error)
	ListByGroupFunc func(ctx context.Context, groupID uuid.UUID) ([]*domain.AuditEntry, error)
}

func (m *auditRepoMock) Append(ctx context.Context, e *domain.AuditEntry) error {
	if m.AppendFunc == nil {
		panic("auditRepoMock.AppendFunc: method is nil but Append was just called")
	}
	return m.AppendFunc(ctx, e)
}

func (m *auditRepoMock) ListByFile(ctx context.Context, fileID uuid.UUID) ([]*domain.AuditEntry, error) {
	if m.ListByFileFunc == nil {
		panic("auditRepoMock.ListByFileFunc: method is nil but ListByFile was just called")
	}
	return m.ListByFileFunc(ctx, fileID)
}

func (m *auditRepoMock) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*domain.AuditEntry, error) {
	if m.ListByGroupFunc == nil {
		panic("auditRepoMock.ListByGroupFunc: method is nil but ListByGroup was just called")
	}
	return m.ListByGroupFunc(ctx, groupID)
}

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	PutFunc    func(ctx context.Context, key string, data []byte) error
	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *blobStoreMock) Put(ctx context.Context, key string, data []byte) error {
	if m.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but Put was just called")
	}
	return m.PutFunc(ctx, key, data)
}

func (m *blobStoreMock) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc == nil {
		panic("blobStoreMock.GetFunc: method is nil but Get was just called")
	}
	return m.GetFunc(ctx, key)
}

func (m *blobStoreMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, key)
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyGroupFunc func(ctx context.Context, kind domain.NotificationKind, message string, groupID, excludedUser uuid.UUID) error
}

func (m *notifierMock) NotifyGroup(ctx context.Context, kind domain.NotificationKind, message string, groupID, excludedUser uuid.UUID) error {
	if m.NotifyGroupFunc == nil {
		panic("notifierMock.NotifyGroupFunc: method is nil but NotifyGroup was just called")
	}
	return m.NotifyGroupFunc(ctx, kind, message, groupID, excludedUser)
}

var _ accessPolicy = &accessPolicyMock{}

type accessPolicyMock struct {
	IsMemberFunc      func(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	CanModifyFileFunc func(ctx context.Context, requesterID, uploaderID, groupID uuid.UUID) (bool, error)
}

func (m *accessPolicyMock) IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	if m.IsMemberFunc == nil {
		panic("accessPolicyMock.IsMemberFunc: method is nil but IsMember was just called")
	}
	return m.IsMemberFunc(ctx, userID, groupID)
}

func (m *accessPolicyMock) CanModifyFile(ctx context.Context, requesterID, uploaderID, groupID uuid.UUID) (bool, error) {
	if m.CanModifyFileFunc == nil {
		panic("accessPolicyMock.CanModifyFileFunc: method is nil but CanModifyFile was just called")
	}
	return m.CanModifyFileFunc(ctx, requesterID, uploaderID, groupID)
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
