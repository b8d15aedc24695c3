package booking

import (
	"context"

	"turfbook/models"
	"turfbook/services/catalog"
)

// Resolve computes per-slot bookability for (turf, date). A slot is
// bookable unless it is already held by a confirmed or completed booking
// on that date, or the date is today and the slot's start time has
// already arrived. Slots come back in catalog order; an empty catalog
// yields an empty list, a missing one ErrCatalogNotFound.
func (s *DefaultBookingService) Resolve(ctx context.Context, turfID, date string) ([]models.AvailableSlot, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	cat, err := s.Catalogs.GetByTurfID(ctx, turfID)
	if err != nil {
		return nil, &StorageError{Op: "load catalog", Err: err}
	}
	if cat == nil {
		return nil, catalog.ErrCatalogNotFound
	}

	bookings, err := s.Bookings.GetByTurfAndDate(ctx, turfID, day)
	if err != nil {
		return nil, &StorageError{Op: "list turf bookings", Err: err}
	}

	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.Status == models.BookingConfirmed || b.Status == models.BookingCompleted {
			booked[b.SlotID] = struct{}{}
		}
	}

	now := s.now()
	isToday := now.Format(DateLayout) == date
	// Zero-padded HH:MM compares correctly as a string.
	wallClock := now.Format("15:04")

	out := make([]models.AvailableSlot, 0, len(cat.Slots))
	for _, sl := range cat.Slots {
		available := true
		if _, taken := booked[sl.ID]; taken {
			available = false
		}
		if isToday && wallClock >= sl.Start {
			available = false
		}
		out = append(out, models.AvailableSlot{
			SlotID:    sl.ID,
			Start:     sl.Start,
			End:       sl.End,
			Price:     sl.Price,
			Available: available,
		})
	}
	return out, nil
}
