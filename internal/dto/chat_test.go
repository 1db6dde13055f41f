package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub/marketplace-api/internal/models"
)

func TestChatViewInlinesParticipants(t *testing.T) {
	now := time.Now()
	msgID := uint(5)

	ch := models.Chat{
		ID:             1,
		ParticipantAID: 3,
		ParticipantA:   models.User{ID: 3, Name: "Ana", Role: models.RoleCustomer},
		ParticipantBID: 9,
		ParticipantB:   models.User{ID: 9, Name: "Bruno", Role: models.RoleProvider},
		LastMessageID:  &msgID,
		LastMessage: &models.Message{
			ID:       5,
			ChatID:   1,
			SenderID: 3,
			Sender:   models.User{ID: 3, Name: "Ana"},
			Content:  "hi",
		},
		LastMessageAt: now,
	}

	view := ChatView(ch)

	require.Len(t, view.Participants, 2)
	assert.Equal(t, "Ana", view.Participants[0].Name)
	assert.Equal(t, "Bruno", view.Participants[1].Name)
	require.NotNil(t, view.LastMessage)
	assert.Equal(t, "hi", view.LastMessage.Content)
	assert.Equal(t, "Ana", view.LastMessage.SenderName)
	assert.Equal(t, now, view.LastMessageAt)
}

func TestChatViewWithoutLastMessage(t *testing.T) {
	view := ChatView(models.Chat{ID: 2})
	assert.Nil(t, view.LastMessage)
}

func TestPublicUserOmitsCredentials(t *testing.T) {
	lat := 1.5
	u := models.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "notyourbusiness",
		Role:         models.RoleProvider,
		LocationLat:  &lat,
	}

	view := PublicUser(u)

	assert.Equal(t, uint(7), view.ID)
	assert.Equal(t, "ana@example.com", view.Email)
	assert.Equal(t, &lat, view.LocationLat)
	// PublicUserDTO has no password field at all; nothing else to assert.
}
