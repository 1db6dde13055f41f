package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domainchat "github.com/handyhub/marketplace-api/internal/domain/chat"
	"github.com/handyhub/marketplace-api/internal/dto"
	"github.com/handyhub/marketplace-api/internal/httperr"
	"github.com/handyhub/marketplace-api/internal/httpresp"
	"github.com/handyhub/marketplace-api/internal/middleware"
	"github.com/handyhub/marketplace-api/internal/models"
)

type ChatHandler struct {
	repo domainchat.Repository
}

func NewChatHandler(repo domainchat.Repository) *ChatHandler {
	return &ChatHandler{repo: repo}
}

// --------- Requests ---------

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// --------- Helpers ---------

func (h *ChatHandler) loadChatForUser(c *gin.Context, rawID string, userID uint) (*models.Chat, bool) {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_chat_id", "Chat id must be numeric.")
		return nil, false
	}

	chat, err := h.repo.GetChatByID(c.Request.Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "chat_not_found", "No such chat.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_chat", "Could not load the chat.")
		return nil, false
	}

	if chat.ParticipantAID != userID && chat.ParticipantBID != userID {
		httperr.Forbidden(c, "not_a_participant", "You are not part of this chat.")
		return nil, false
	}

	return chat, true
}

// --------- Handlers ---------

// Initiate returns the existing chat with the given participant or
// creates one. Idempotent in both argument orders.
func (h *ChatHandler) Initiate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	ctx := c.Request.Context()

	participantID, err := strconv.ParseUint(c.Param("participantId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_participant_id", "Participant id must be numeric.")
		return
	}

	if uint(participantID) == userID {
		httperr.BadRequest(c, "cannot_chat_with_self", "A chat needs two distinct participants.")
		return
	}

	if _, err := h.repo.GetUser(ctx, uint(participantID)); err != nil {
		httperr.NotFound(c, "user_not_found", "No such user.")
		return
	}

	a, b := domainchat.NormalizePair(userID, uint(participantID))

	chat, err := h.repo.FindChatByPair(ctx, a, b)
	if err == gorm.ErrRecordNotFound {
		created := models.Chat{
			ParticipantAID: a,
			ParticipantBID: b,
			LastMessageAt:  time.Now(),
		}
		if createErr := h.repo.CreateChat(ctx, &created); createErr != nil {
			// A concurrent initiate for the same pair may have won the
			// unique-index race; the existing row is the right answer.
			chat, err = h.repo.FindChatByPair(ctx, a, b)
			if err != nil {
				httperr.Internal(c, "failed_to_create_chat", "Could not create the chat.")
				return
			}
		} else {
			chat, err = h.repo.FindChatByPair(ctx, a, b)
			if err != nil {
				httperr.Internal(c, "failed_to_get_chat", "Could not look up the chat.")
				return
			}
		}
	} else if err != nil {
		httperr.Internal(c, "failed_to_get_chat", "Could not look up the chat.")
		return
	}

	httpresp.OK(c, dto.ChatView(*chat))
}

func (h *ChatHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chats, err := h.repo.ListChatsForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_chats", "Could not list chats.")
		return
	}

	out := make([]dto.ChatDTO, 0, len(chats))
	for _, chat := range chats {
		out = append(out, dto.ChatView(chat))
	}

	httpresp.OK(c, out)
}

func (h *ChatHandler) Messages(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	chat, ok := h.loadChatForUser(c, c.Param("chatId"), userID)
	if !ok {
		return
	}

	messages, err := h.repo.ListMessages(c.Request.Context(), chat.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_messages", "Could not list messages.")
		return
	}

	out := make([]dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.MessageView(m))
	}

	httpresp.OK(c, out)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	ctx := c.Request.Context()

	chat, ok := h.loadChatForUser(c, c.Param("chatId"), userID)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	msg := models.Message{
		ChatID:   chat.ID,
		SenderID: userID,
		Content:  req.Content,
	}

	if err := h.repo.CreateMessage(ctx, &msg); err != nil {
		httperr.Internal(c, "failed_to_send_message", "Could not store the message.")
		return
	}

	// Denormalized pointer update. Runs after the message insert with no
	// transaction tying the two together, so the pointer can go stale if
	// this write fails.
	chat.LastMessageID = &msg.ID
	chat.LastMessageAt = msg.CreatedAt
	if err := h.repo.SaveChat(ctx, chat); err != nil {
		httperr.Internal(c, "failed_to_update_chat", "Message stored but chat pointer not updated.")
		return
	}

	if populated, err := h.repo.GetMessageByID(ctx, msg.ID); err == nil {
		msg = *populated
	}

	httpresp.Created(c, dto.MessageView(msg))
}
