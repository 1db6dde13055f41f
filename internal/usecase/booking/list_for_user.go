package booking

import (
	"context"

	domain "github.com/handyhub/marketplace-api/internal/domain/booking"
	"github.com/handyhub/marketplace-api/internal/models"
)

// ListBookingsForUser resolves the role-dependent view: customers see
// their own bookings, providers see bookings placed against their
// services, admins see everything.
type ListBookingsForUser struct {
	repo domain.Repository
}

func NewListBookingsForUser(
	repo domain.Repository,
) *ListBookingsForUser {
	return &ListBookingsForUser{
		repo: repo,
	}
}

func (uc *ListBookingsForUser) Execute(
	ctx context.Context,
	userID uint,
	role string,
) ([]models.Booking, error) {

	switch role {
	case models.RoleProvider:
		return uc.repo.ListBookingsForProvider(ctx, userID)
	case models.RoleAdmin:
		return uc.repo.ListAllBookings(ctx)
	default:
		return uc.repo.ListBookingsForCustomer(ctx, userID)
	}
}
