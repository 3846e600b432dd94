package dto

import (
	"time"

	"github.com/google/uuid"
)

type OpenSessionRequest struct {
	// SessionId lets a returning client reopen under its previous id so
	// persisted preferences and wizard progress are restored.
	SessionId uuid.UUID `json:"session_id,omitempty"`
	Route     string    `json:"route,omitempty"`
	// UserName is filled by the controller from the JWT, never from the
	// request body.
	UserName string `json:"-"`
}

type OpenSessionResponse struct {
	SessionId uuid.UUID             `json:"session_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type SendMessageResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

type ChatMessageResponse struct {
	Id           uuid.UUID `json:"id"`
	Author       string    `json:"author"`
	Text         string    `json:"text"`
	QuickReplies []string  `json:"quick_replies,omitempty"`
	Actions      []string  `json:"actions,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type TranscriptResponse struct {
	SessionId   uuid.UUID             `json:"session_id"`
	IsOpen      bool                  `json:"is_open"`
	IsSuspended bool                  `json:"is_suspended"`
	Messages    []ChatMessageResponse `json:"messages"`
}

type SetRouteRequest struct {
	Route string `json:"route" validate:"required"`
}

type QuickActionResponse struct {
	Key    string `json:"key"`
	Text   string `json:"text"`
	Action string `json:"action"`
}

type PreferencesResponse struct {
	DetailLevel        string   `json:"detail_level"`
	FavoriteServices   []string `json:"favorite_services"`
	CompletedTutorials []string `json:"completed_tutorials"`
	UserName           string   `json:"user_name,omitempty"`
}
