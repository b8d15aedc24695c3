package bookingRepo

import (
	"context"
	"errors"
	"time"

	"turfbook/models"
)

// ErrDuplicateBooking is returned by Create when a non-cancelled booking
// already holds the same (turf, slot, date) key.
var ErrDuplicateBooking = errors.New("slot already booked for this date")

// BookingRepository is the authoritative ledger of bookings. Create must
// uphold the at-most-one-active-booking-per-(turf, slot, date) invariant
// under concurrent calls; all date lookups match on the day window.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByTurfAndDate(ctx context.Context, turfID string, day time.Time) ([]models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
}
