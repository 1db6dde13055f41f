package booking

import (
	"context"

	"github.com/handyhub/marketplace-api/internal/audit"
	domain "github.com/handyhub/marketplace-api/internal/domain/booking"
	"github.com/handyhub/marketplace-api/internal/httperr"
	"github.com/handyhub/marketplace-api/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
	statusLiteral string,
) (*models.Booking, error) {

	to, err := domain.Parse(statusLiteral)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Transition(b, to); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_status_" + string(to),
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"status": string(to)},
	})

	return b, nil
}
