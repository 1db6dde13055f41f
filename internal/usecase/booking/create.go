package booking

import (
	"context"
	"log"
	"time"

	"github.com/handyhub/marketplace-api/internal/audit"
	domain "github.com/handyhub/marketplace-api/internal/domain/booking"
	"github.com/handyhub/marketplace-api/internal/httperr"
	"github.com/handyhub/marketplace-api/internal/models"
	"github.com/handyhub/marketplace-api/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	ServiceID  uint

	Date    time.Time
	Address string

	ClientName      string
	ClientEmail     string
	ClientPhone     string
	LocationDetails string

	// Taken verbatim from the client, not reconciled against the
	// service price.
	TotalAmount float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	payments *payments.Client
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	pay *payments.Client,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		payments: pay,
		audit:    audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	b := &models.Booking{
		CustomerID:      in.CustomerID,
		ServiceID:       svc.ID,
		Status:          string(domain.InitialStatus()),
		Date:            in.Date,
		Address:         in.Address,
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		LocationDetails: in.LocationDetails,
		TotalAmount:     in.TotalAmount,
		PaymentStatus:   "PENDING",
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Checkout preference is best effort. A payment-provider outage must
	// not lose the booking.
	pref, err := uc.payments.CreateBookingPreference(ctx, b.ID, svc.Name, in.TotalAmount)
	if err != nil {
		log.Printf("payment preference for booking %d: %v", b.ID, err)
	} else if pref != nil {
		b.PaymentPreferenceID = pref.ID
		if err := uc.repo.UpdateBooking(ctx, b); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return uc.repo.GetBookingByID(ctx, b.ID)
}
