package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "turfbook/database/repository/booking"
	"turfbook/models"
	"turfbook/services/catalog"
	"turfbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.Booking, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "user_id", Reason: "required"}
	}
	if req.TurfID == "" {
		return nil, &ValidationError{Field: "turf_id", Reason: "required"}
	}
	if req.OwnerID == "" {
		return nil, &ValidationError{Field: "owner_id", Reason: "required"}
	}
	if req.SlotID == "" {
		return nil, &ValidationError{Field: "slot_id", Reason: "required"}
	}
	if req.ScreenshotRef == "" {
		return nil, &ValidationError{Field: "screenshot_ref", Reason: "payment screenshot is required"}
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	cat, err := s.Catalogs.GetByTurfID(ctx, req.TurfID)
	if err != nil {
		return nil, &StorageError{Op: "load catalog", Err: err}
	}
	if cat == nil {
		return nil, catalog.ErrCatalogNotFound
	}

	var slot *models.Slot
	for i := range cat.Slots {
		if cat.Slots[i].ID == req.SlotID {
			slot = &cat.Slots[i]
			break
		}
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		TurfID:          req.TurfID,
		SlotID:          req.SlotID,
		UserID:          userID,
		OwnerID:         req.OwnerID,
		Date:            day,
		SlotTime:        slot.Start + " - " + slot.End,
		TotalAmount:     req.TotalAmount,
		AdvanceAmount:   req.AdvanceAmount,
		RemainingAmount: req.RemainingAmount,
		PaymentRef:      req.PaymentRef,
		ScreenshotRef:   req.ScreenshotRef,
		Status:          models.BookingConfirmed,
		Active:          true,
		CreatedAt:       s.now(),
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return nil, ErrSlotTaken
		}
		return nil, &StorageError{Op: "create booking", Err: err}
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("turfID", booking.TurfID),
		zap.String("slotID", booking.SlotID),
		zap.String("date", req.Date))
	return booking, nil
}

func (s *DefaultBookingService) GetBookingsForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetByUser(ctx, userID)
	if err != nil {
		return nil, &StorageError{Op: "list user bookings", Err: err}
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetBookingsForOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, &StorageError{Op: "list owner bookings", Err: err}
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetBookingsForTurfAndDate(ctx context.Context, turfID, date string) ([]models.Booking, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.GetByTurfAndDate(ctx, turfID, day)
	if err != nil {
		return nil, &StorageError{Op: "list turf bookings", Err: err}
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.BookingCancelled)
}

func (s *DefaultBookingService) CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.BookingCompleted)
}

// transition moves a confirmed booking to a terminal status. Cancelled
// and completed bookings stay as they are; only confirmed may move.
func (s *DefaultBookingService) transition(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	existing, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, &StorageError{Op: "load booking", Err: err}
	}
	if existing == nil {
		return nil, ErrBookingNotFound
	}
	if existing.Status != models.BookingConfirmed {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransition, existing.Status)
	}

	updated, err := s.Bookings.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, &StorageError{Op: "update booking status", Err: err}
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", bookingID), zap.String("status", status))
	return updated, nil
}

// parseDate validates the wire format and normalises to UTC midnight.
func parseDate(date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, &ValidationError{Field: "date", Reason: "required"}
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date)}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
