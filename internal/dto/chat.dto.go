package dto

import (
	"time"

	"github.com/handyhub/marketplace-api/internal/models"
)

type ChatDTO struct {
	ID            uint            `json:"id"`
	Participants  []PublicUserDTO `json:"participants"`
	LastMessage   *MessageDTO     `json:"last_message"`
	LastMessageAt time.Time       `json:"last_message_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

type MessageDTO struct {
	ID         uint      `json:"id"`
	ChatID     uint      `json:"chat_id"`
	SenderID   uint      `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

func ChatView(ch models.Chat) ChatDTO {
	out := ChatDTO{
		ID: ch.ID,
		Participants: []PublicUserDTO{
			PublicUser(ch.ParticipantA),
			PublicUser(ch.ParticipantB),
		},
		LastMessageAt: ch.LastMessageAt,
		CreatedAt:     ch.CreatedAt,
	}

	if ch.LastMessage != nil {
		msg := MessageView(*ch.LastMessage)
		out.LastMessage = &msg
	}

	return out
}

func MessageView(m models.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID,
		ChatID:     m.ChatID,
		SenderID:   m.SenderID,
		SenderName: m.Sender.Name,
		Content:    m.Content,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}
