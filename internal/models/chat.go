package models

import "time"

// Chat holds an unordered participant pair, normalized so the smaller
// user id always lands in ParticipantAID. The unique index over the pair
// makes initiate-chat idempotent regardless of argument order.
type Chat struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ParticipantAID uint `gorm:"uniqueIndex:idx_chat_pair;not null" json:"participant_a_id"`
	ParticipantA   User `gorm:"foreignKey:ParticipantAID" json:"participant_a"`

	ParticipantBID uint `gorm:"uniqueIndex:idx_chat_pair;not null" json:"participant_b_id"`
	ParticipantB   User `gorm:"foreignKey:ParticipantBID" json:"participant_b"`

	LastMessageID *uint    `json:"last_message_id"`
	LastMessage   *Message `gorm:"foreignKey:LastMessageID" json:"last_message"`

	LastMessageAt time.Time `json:"last_message_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ChatID uint `gorm:"index;not null" json:"chat_id"`

	SenderID uint `gorm:"not null" json:"sender_id"`
	Sender   User `gorm:"foreignKey:SenderID" json:"sender"`

	Content string `gorm:"size:2000;not null" json:"content"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
