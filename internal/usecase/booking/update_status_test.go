package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub/marketplace-api/internal/httperr"
	"github.com/handyhub/marketplace-api/internal/models"
)

func seedBooking(repo *fakeRepository, status string) *models.Booking {
	repo.addService(models.Service{ID: 7, ProviderID: 2, Name: "Pipe fix"})
	b := &models.Booking{CustomerID: 1, ServiceID: 7, Status: status}
	_ = repo.CreateBooking(context.Background(), b)
	return b
}

func TestUpdateStatusHappyPath(t *testing.T) {
	repo := newFakeRepository()
	b := seedBooking(repo, "PENDING")

	uc := NewUpdateBookingStatus(repo, nil)

	updated, err := uc.Execute(context.Background(), 2, b.ID, "CONFIRMED")
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", updated.Status)

	updated, err = uc.Execute(context.Background(), 2, b.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", updated.Status)
}

func TestUpdateStatusRejectsUnknownLiteral(t *testing.T) {
	repo := newFakeRepository()
	b := seedBooking(repo, "PENDING")

	uc := NewUpdateBookingStatus(repo, nil)

	_, err := uc.Execute(context.Background(), 2, b.ID, "DONE")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	repo := newFakeRepository()
	b := seedBooking(repo, "COMPLETED")

	uc := NewUpdateBookingStatus(repo, nil)

	_, err := uc.Execute(context.Background(), 2, b.ID, "CANCELLED")
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))

	stored, _ := repo.GetBookingByID(context.Background(), b.ID)
	assert.Equal(t, "COMPLETED", stored.Status)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	repo := newFakeRepository()
	uc := NewUpdateBookingStatus(repo, nil)

	_, err := uc.Execute(context.Background(), 2, 404, "CONFIRMED")
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
