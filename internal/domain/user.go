package domain

import "github.com/google/uuid"

// User is an externally owned identity. The engine never creates or mutates
// users; it only references them by ID. Equality is by ID.
type User struct {
	ID       uuid.UUID
	Username string
	Email    string
	Enabled  bool
}
