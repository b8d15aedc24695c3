package models

import "time"

// Booking statuses. Confirmed is the initial status; cancelled and
// completed are terminal and reached only through owner/admin action.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking represents a confirmed reservation of one slot on one calendar
// date. Date is stored normalised to UTC midnight; all date matching is
// done on the day window. Active mirrors the status (true for confirmed
// and completed) and backs the uniqueness index on (turf, slot, date).
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	TurfID          string    `bson:"turf_id" json:"turf_id"`
	SlotID          string    `bson:"slot_id" json:"slot_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	OwnerID         string    `bson:"owner_id" json:"owner_id"`
	Date            time.Time `bson:"date" json:"date"`
	SlotTime        string    `bson:"slot_time" json:"slot_time"`
	TotalAmount     float64   `bson:"total_amount" json:"total_amount"`
	AdvanceAmount   float64   `bson:"advance_amount" json:"advance_amount"`
	RemainingAmount float64   `bson:"remaining_amount" json:"remaining_amount"`
	PaymentRef      string    `bson:"payment_ref,omitempty" json:"payment_ref,omitempty"`
	ScreenshotRef   string    `bson:"screenshot_ref" json:"screenshot_ref"`
	Status          string    `bson:"status" json:"status"`
	Active          bool      `bson:"active" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// CreateBookingRequest is the booking creation payload. Date uses the
// "2006-01-02" layout. ScreenshotRef is the storage reference returned by
// the upload endpoint for the proof-of-payment image.
type CreateBookingRequest struct {
	TurfID          string  `json:"turf_id" binding:"required"`
	SlotID          string  `json:"slot_id" binding:"required"`
	OwnerID         string  `json:"owner_id" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	TotalAmount     float64 `json:"total_amount"`
	AdvanceAmount   float64 `json:"advance_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	PaymentRef      string  `json:"payment_ref"`
	ScreenshotRef   string  `json:"screenshot_ref" binding:"required"`
}
