package booking

import (
	"context"
	"errors"
	"sort"

	domain "github.com/handyhub/marketplace-api/internal/domain/booking"
	"github.com/handyhub/marketplace-api/internal/models"
)

// fakeRepository is an in-memory stand-in for the gorm repository.
type fakeRepository struct {
	services map[uint]models.Service
	bookings map[uint]*models.Booking
	nextID   uint

	createErr error
	updateErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		services: make(map[uint]models.Service),
		bookings: make(map[uint]*models.Booking),
	}
}

func (f *fakeRepository) addService(svc models.Service) {
	f.services[svc.ID] = svc
}

func (f *fakeRepository) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &svc, nil
}

func (f *fakeRepository) CreateBooking(_ context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	b.ID = f.nextID
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepository) UpdateBooking(_ context.Context, b *models.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepository) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	out := *b
	if svc, ok := f.services[out.ServiceID]; ok {
		out.Service = svc
	}
	return &out, nil
}

func (f *fakeRepository) ListBookingsForCustomer(_ context.Context, customerID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	sortByID(out)
	return out, nil
}

func (f *fakeRepository) ListBookingsForProvider(_ context.Context, providerID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if svc, ok := f.services[b.ServiceID]; ok && svc.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	sortByID(out)
	return out, nil
}

func (f *fakeRepository) ListAllBookings(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	sortByID(out)
	return out, nil
}

func sortByID(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].ID < bookings[j].ID
	})
}

var _ domain.Repository = (*fakeRepository)(nil)
