// Package realtime defines the realtime channel collaborator. Delivery is
// fire-and-forget, at-most-once, best-effort: a slow or absent subscriber
// never blocks or fails the publishing operation.
package realtime

import (
	"fmt"

	"github.com/google/uuid"
)

// Publisher pushes a payload to every current subscriber of a topic.
type Publisher interface {
	Publish(topic string, payload any)
}

// GroupChatTopic is the topic for new messages in a group chat.
func GroupChatTopic(groupID uuid.UUID) string {
	return fmt.Sprintf("group.%s.chat", groupID)
}

// GroupChatUpdateTopic is the topic for edited messages in a group chat.
func GroupChatUpdateTopic(groupID uuid.UUID) string {
	return fmt.Sprintf("group.%s.chat.update", groupID)
}

// GroupChatDeleteTopic is the topic for deleted messages in a group chat.
func GroupChatDeleteTopic(groupID uuid.UUID) string {
	return fmt.Sprintf("group.%s.chat.delete", groupID)
}

// UserNotificationsTopic is the per-user topic for notification pushes.
func UserNotificationsTopic(userID uuid.UUID) string {
	return fmt.Sprintf("user.%s.notifications", userID)
}
