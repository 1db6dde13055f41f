package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/handyhub/marketplace-api/internal/domain/booking"
	"github.com/handyhub/marketplace-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// populated mirrors the original populate contract: every booking read
// carries the customer and the service with its provider and category
// inlined.
func (r *BookingGormRepository) populated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Service.Provider").
		Preload("Service.Category")
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (create / update)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Booking (reads)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.populated(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.populated(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListBookingsForProvider pre-filters through a join on services instead
// of scanning every booking and discarding non-matches the way the
// original backend did.
func (r *BookingGormRepository) ListBookingsForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.populated(ctx).
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("services.provider_id = ?", providerID).
		Order("bookings.created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListAllBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.populated(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
