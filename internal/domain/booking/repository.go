package booking

import (
	"context"

	"github.com/handyhub/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Booking (create / update) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (reads, populated) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)

	ListBookingsForProvider(
		ctx context.Context,
		providerID uint,
	) ([]models.Booking, error)

	ListAllBookings(
		ctx context.Context,
	) ([]models.Booking, error)
}
