package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one recipient-directed record of group activity.
//
// Read and ReadAt are set together, exactly once, the first time the
// recipient marks the notification read. Only the recipient may mutate or
// delete a notification.
type Notification struct {
	ID          uuid.UUID
	Kind        NotificationKind
	Message     string
	RecipientID uuid.UUID
	GroupID     uuid.UUID
	CreatedAt   time.Time
	Read        bool
	ReadAt      *time.Time
}
