package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatMessageAuthorUser = "user"
	ChatMessageAuthorBot  = "bot"
)

// ChatMessage is one transcript entry. Immutable once appended.
type ChatMessage struct {
	Id           uuid.UUID
	Author       string
	Text         string
	QuickReplies []string
	Actions      []string
	CreatedAt    time.Time
}
