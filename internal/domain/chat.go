package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one message in a group chat.
// AttachmentID optionally references a FileRecord shared in the message.
type ChatMessage struct {
	ID           uuid.UUID
	GroupID      uuid.UUID
	SenderID     uuid.UUID
	Content      string
	AttachmentID *uuid.UUID
	SentAt       time.Time
	EditedAt     *time.Time
}
