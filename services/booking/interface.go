package booking

import (
	"context"
	"time"

	bookingRepo "turfbook/database/repository/booking"
	catalogRepo "turfbook/database/repository/catalog"
	"turfbook/models"
)

// DateLayout is the calendar-date wire format used across the API.
const DateLayout = "2006-01-02"

// Service is the booking ledger plus the availability resolver.
type Service interface {
	// CreateBooking records a new confirmed booking, or fails with
	// ErrSlotTaken when the (turf, slot, date) key is already held.
	CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.Booking, error)
	// Resolve annotates the turf's catalog with per-slot bookability for
	// the given date, applying the same-day cutoff rule.
	Resolve(ctx context.Context, turfID, date string) ([]models.AvailableSlot, error)

	GetBookingsForUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetBookingsForOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	GetBookingsForTurfAndDate(ctx context.Context, turfID, date string) ([]models.Booking, error)
	GetAllBookings(ctx context.Context) ([]models.Booking, error)

	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultBookingService is the production Service implementation. Now is
// the clock used for the same-day cutoff; it defaults to time.Now and is
// swappable in tests.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Catalogs catalogRepo.CatalogRepository
	Now      func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
