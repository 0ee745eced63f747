package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the sender of a timeline message.
type Role string

const (
	RoleUser   Role = "user"
	RoleBot    Role = "bot"
	RoleSystem Role = "system"
)

// Message is one entry of the session timeline. The timeline is append-only:
// once added, a message is never edited or removed, and display order is
// creation order (Seq).
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Seq       int       `json:"seq"`
	CreatedAt time.Time `json:"created_at"`
}
