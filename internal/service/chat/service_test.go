package chat

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
	"github.com/m1nazuk1/cloud-storage/internal/realtime"
)

type testDeps struct {
	messages *chatRepoMock
	files    *fileRepoMock
	realtime *publisherMock
	policy   *accessPolicyMock
}

func defaultDeps() *testDeps {
	return &testDeps{
		messages: &chatRepoMock{},
		files:    &fileRepoMock{},
		realtime: &publisherMock{},
		policy: &accessPolicyMock{
			IsMemberFunc: func(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
				return true, nil
			},
			IsAdminOrCreatorFunc: func(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
				return false, nil
			},
		},
	}
}

func (d *testDeps) service(t *testing.T) *Service {
	t.Helper()
	return NewService(slog.Default(), d.messages, d.files, d.realtime, d.policy)
}

// ---------------------------------------------------------------------------
// SendMessage
// ---------------------------------------------------------------------------

func TestSendMessage_Success(t *testing.T) {
	t.Parallel()

	senderID := uuid.New()
	groupID := uuid.New()

	var created *domain.ChatMessage
	deps := defaultDeps()
	deps.messages.CreateFunc = func(ctx context.Context, m *domain.ChatMessage) error {
		created = m
		return nil
	}

	svc := deps.service(t)

	m, err := svc.SendMessage(context.Background(), senderID, SendMessageInput{
		GroupID: groupID,
		Content: "  hello everyone  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Content != "hello everyone" {
		t.Errorf("content: got %q, want %q", m.Content, "hello everyone")
	}
	if m.SenderID != senderID {
		t.Errorf("sender: got %v, want %v", m.SenderID, senderID)
	}
	if m.EditedAt != nil {
		t.Error("a fresh message must not carry an edit timestamp")
	}
	if created == nil || created.ID != m.ID {
		t.Error("message must be stored")
	}

	events := deps.realtime.Published()
	if len(events) != 1 {
		t.Fatalf("pushes: got %d, want 1", len(events))
	}
	if events[0].Topic != realtime.GroupChatTopic(groupID) {
		t.Errorf("topic: got %q, want %q", events[0].Topic, realtime.GroupChatTopic(groupID))
	}
	if events[0].Payload != m {
		t.Error("push payload should be the stored message")
	}
}

func TestSendMessage_NonMemberForbidden(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.policy.IsMemberFunc = func(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
		return false, nil
	}

	svc := deps.service(t)

	_, err := svc.SendMessage(context.Background(), uuid.New(), SendMessageInput{
		GroupID: uuid.New(),
		Content: "hi",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
	if len(deps.realtime.Published()) != 0 {
		t.Error("nothing may be pushed for a rejected message")
	}
}

func TestSendMessage_EmptyContent(t *testing.T) {
	t.Parallel()

	svc := defaultDeps().service(t)

	_, err := svc.SendMessage(context.Background(), uuid.New(), SendMessageInput{
		GroupID: uuid.New(),
		Content: "   ",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestSendMessage_WithAttachment(t *testing.T) {
	t.Parallel()

	senderID := uuid.New()
	groupID := uuid.New()
	fileID := uuid.New()

	deps := defaultDeps()
	deps.files.GetByIDFunc = func(ctx context.Context, fid uuid.UUID) (*domain.FileRecord, error) {
		return &domain.FileRecord{ID: fid, GroupID: groupID}, nil
	}
	deps.messages.CreateFunc = func(ctx context.Context, m *domain.ChatMessage) error {
		return nil
	}

	svc := deps.service(t)

	m, err := svc.SendMessage(context.Background(), senderID, SendMessageInput{
		GroupID:      groupID,
		Content:      "see attached",
		AttachmentID: &fileID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.AttachmentID == nil || *m.AttachmentID != fileID {
		t.Errorf("attachment: got %v, want %v", m.AttachmentID, fileID)
	}
}

func TestSendMessage_AttachmentFromAnotherGroup(t *testing.T) {
	t.Parallel()

	fileID := uuid.New()

	deps := defaultDeps()
	deps.files.GetByIDFunc = func(ctx context.Context, fid uuid.UUID) (*domain.FileRecord, error) {
		return &domain.FileRecord{ID: fid, GroupID: uuid.New()}, nil
	}

	svc := deps.service(t)

	_, err := svc.SendMessage(context.Background(), uuid.New(), SendMessageInput{
		GroupID:      uuid.New(),
		Content:      "see attached",
		AttachmentID: &fileID,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestSendMessage_DeletedAttachment(t *testing.T) {
	t.Parallel()

	groupID := uuid.New()
	fileID := uuid.New()

	deps := defaultDeps()
	deps.files.GetByIDFunc = func(ctx context.Context, fid uuid.UUID) (*domain.FileRecord, error) {
		return &domain.FileRecord{ID: fid, GroupID: groupID, Deleted: true}, nil
	}

	svc := deps.service(t)

	_, err := svc.SendMessage(context.Background(), uuid.New(), SendMessageInput{
		GroupID:      groupID,
		Content:      "see attached",
		AttachmentID: &fileID,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("a soft-deleted file cannot be attached, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListGroupMessages
// ---------------------------------------------------------------------------

func TestListGroupMessages_NonMemberForbidden(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.policy.IsMemberFunc = func(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
		return false, nil
	}

	svc := deps.service(t)

	_, err := svc.ListGroupMessages(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
}

func TestListGroupMessages_EmptyNotNil(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.messages.ListByGroupFunc = func(ctx context.Context, groupID uuid.UUID) ([]*domain.ChatMessage, error) {
		return []*domain.ChatMessage{}, nil
	}

	svc := deps.service(t)

	got, err := svc.ListGroupMessages(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

// ---------------------------------------------------------------------------
// EditMessage
// ---------------------------------------------------------------------------

func TestEditMessage_Success(t *testing.T) {
	t.Parallel()

	senderID := uuid.New()
	groupID := uuid.New()
	messageID := uuid.New()

	deps := defaultDeps()
	deps.messages.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error) {
		return &domain.ChatMessage{ID: id, GroupID: groupID, SenderID: senderID, Content: "typo"}, nil
	}
	deps.messages.UpdateContentFunc = func(ctx context.Context, id uuid.UUID, content string, editedAt time.Time) error {
		if content != "fixed" {
			t.Errorf("content: got %q, want %q", content, "fixed")
		}
		if editedAt.IsZero() {
			t.Error("editedAt must be set")
		}
		return nil
	}

	svc := deps.service(t)

	updated, err := svc.EditMessage(context.Background(), senderID, EditMessageInput{
		MessageID: messageID,
		Content:   " fixed ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Content != "fixed" {
		t.Errorf("content: got %q, want %q", updated.Content, "fixed")
	}
	if updated.EditedAt == nil {
		t.Error("edit timestamp must be set")
	}

	events := deps.realtime.Published()
	if len(events) != 1 {
		t.Fatalf("pushes: got %d, want 1", len(events))
	}
	if events[0].Topic != realtime.GroupChatUpdateTopic(groupID) {
		t.Errorf("topic: got %q, want %q", events[0].Topic, realtime.GroupChatUpdateTopic(groupID))
	}
}

func TestEditMessage_OnlySender(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.messages.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error) {
		return &domain.ChatMessage{ID: id, GroupID: uuid.New(), SenderID: uuid.New()}, nil
	}

	svc := deps.service(t)

	_, err := svc.EditMessage(context.Background(), uuid.New(), EditMessageInput{
		MessageID: uuid.New(),
		Content:   "hijack",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("only the sender may edit, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// DeleteMessage
// ---------------------------------------------------------------------------

func TestDeleteMessage_BySender(t *testing.T) {
	t.Parallel()

	senderID := uuid.New()
	groupID := uuid.New()
	messageID := uuid.New()

	deleted := false
	deps := defaultDeps()
	deps.messages.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error) {
		return &domain.ChatMessage{ID: id, GroupID: groupID, SenderID: senderID}, nil
	}
	deps.messages.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
		deleted = true
		return nil
	}
	deps.policy.IsAdminOrCreatorFunc = func(ctx context.Context, userID, gid uuid.UUID) (bool, error) {
		t.Error("the sender needs no elevated role to delete their own message")
		return false, nil
	}

	svc := deps.service(t)

	if err := svc.DeleteMessage(context.Background(), senderID, messageID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected the message to be deleted")
	}

	events := deps.realtime.Published()
	if len(events) != 1 {
		t.Fatalf("pushes: got %d, want 1", len(events))
	}
	if events[0].Topic != realtime.GroupChatDeleteTopic(groupID) {
		t.Errorf("topic: got %q, want %q", events[0].Topic, realtime.GroupChatDeleteTopic(groupID))
	}
	if events[0].Payload != messageID {
		t.Error("the delete push carries the message id")
	}
}

func TestDeleteMessage_ByAdmin(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()

	deleted := false
	deps := defaultDeps()
	deps.messages.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error) {
		return &domain.ChatMessage{ID: id, GroupID: uuid.New(), SenderID: uuid.New()}, nil
	}
	deps.messages.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
		deleted = true
		return nil
	}
	deps.policy.IsAdminOrCreatorFunc = func(ctx context.Context, userID, gid uuid.UUID) (bool, error) {
		return true, nil
	}

	svc := deps.service(t)

	if err := svc.DeleteMessage(context.Background(), adminID, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("an admin may delete anyone's message")
	}
}

func TestDeleteMessage_PlainMemberForbidden(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.messages.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.ChatMessage, error) {
		return &domain.ChatMessage{ID: id, GroupID: uuid.New(), SenderID: uuid.New()}, nil
	}

	svc := deps.service(t)

	err := svc.DeleteMessage(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
	if len(deps.realtime.Published()) != 0 {
		t.Error("nothing may be pushed for a rejected deletion")
	}
}
