package chat

import (
	"context"

	"github.com/handyhub/marketplace-api/internal/models"
)

// Repository abstracts chat persistence. Not-found reads surface
// gorm.ErrRecordNotFound, matching the rest of the data layer.
type Repository interface {
	// -------- Participants --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Chats --------
	FindChatByPair(
		ctx context.Context,
		a, b uint,
	) (*models.Chat, error)

	CreateChat(
		ctx context.Context,
		chat *models.Chat,
	) error

	GetChatByID(
		ctx context.Context,
		id uint,
	) (*models.Chat, error)

	ListChatsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Chat, error)

	SaveChat(
		ctx context.Context,
		chat *models.Chat,
	) error

	// -------- Messages --------
	ListMessages(
		ctx context.Context,
		chatID uint,
	) ([]models.Message, error)

	CreateMessage(
		ctx context.Context,
		m *models.Message,
	) error

	GetMessageByID(
		ctx context.Context,
		id uint,
	) (*models.Message, error)
}
