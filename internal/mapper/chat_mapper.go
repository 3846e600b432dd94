package mapper

import (
	"servizi-facili-be/internal/dto"
	"servizi-facili-be/internal/entity"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) MessageToResponse(msg entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:           msg.Id,
		Author:       msg.Author,
		Text:         msg.Text,
		QuickReplies: msg.QuickReplies,
		Actions:      msg.Actions,
		CreatedAt:    msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToResponse(msgs []entity.ChatMessage) []dto.ChatMessageResponse {
	out := make([]dto.ChatMessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, m.MessageToResponse(msg))
	}
	return out
}

func (m *ChatMapper) PreferencesToResponse(p entity.Preferences) dto.PreferencesResponse {
	return dto.PreferencesResponse{
		DetailLevel:        p.DetailLevel,
		FavoriteServices:   p.FavoriteServices,
		CompletedTutorials: p.CompletedTutorials,
		UserName:           p.UserName,
	}
}
