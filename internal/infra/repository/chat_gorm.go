package repository

import (
	"context"

	"gorm.io/gorm"

	domainchat "github.com/handyhub/marketplace-api/internal/domain/chat"
	"github.com/handyhub/marketplace-api/internal/models"
)

type ChatGormRepository struct {
	db *gorm.DB
}

func NewChatGormRepository(db *gorm.DB) *ChatGormRepository {
	return &ChatGormRepository{db: db}
}

// chatPopulated inlines both participants and the denormalized last
// message on every chat read.
func (r *ChatGormRepository) chatPopulated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("ParticipantA").
		Preload("ParticipantB").
		Preload("LastMessage").
		Preload("LastMessage.Sender")
}

// --------------------------------------------------
// Participants
// --------------------------------------------------

func (r *ChatGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// --------------------------------------------------
// Chats
// --------------------------------------------------

func (r *ChatGormRepository) FindChatByPair(
	ctx context.Context,
	a, b uint,
) (*models.Chat, error) {

	var chat models.Chat
	if err := r.chatPopulated(ctx).
		Where("participant_a_id = ? AND participant_b_id = ?", a, b).
		First(&chat).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatGormRepository) CreateChat(
	ctx context.Context,
	chat *models.Chat,
) error {
	return r.db.WithContext(ctx).Create(chat).Error
}

func (r *ChatGormRepository) GetChatByID(
	ctx context.Context,
	id uint,
) (*models.Chat, error) {

	var chat models.Chat
	if err := r.db.WithContext(ctx).First(&chat, id).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatGormRepository) ListChatsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Chat, error) {

	var chats []models.Chat
	if err := r.chatPopulated(ctx).
		Where("participant_a_id = ? OR participant_b_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *ChatGormRepository) SaveChat(
	ctx context.Context,
	chat *models.Chat,
) error {
	return r.db.WithContext(ctx).Save(chat).Error
}

// --------------------------------------------------
// Messages
// --------------------------------------------------

func (r *ChatGormRepository) ListMessages(
	ctx context.Context,
	chatID uint,
) ([]models.Message, error) {

	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("chat_id = ?", chatID).
		Order("id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *ChatGormRepository) CreateMessage(
	ctx context.Context,
	m *models.Message,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ChatGormRepository) GetMessageByID(
	ctx context.Context,
	id uint,
) (*models.Message, error) {

	var m models.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Compile-time check
var _ domainchat.Repository = (*ChatGormRepository)(nil)
