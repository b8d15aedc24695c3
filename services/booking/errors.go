package booking

import (
	"errors"
	"fmt"
)

// ErrSlotTaken is the conflict error: another non-cancelled booking
// already holds the requested (turf, slot, date). The caller should
// re-query availability and pick another slot; retrying the identical
// request reproduces the conflict.
var ErrSlotTaken = errors.New("slot already booked for the selected date")

// ErrSlotNotFound is returned when the referenced slot does not exist in
// the turf's catalog.
var ErrSlotNotFound = errors.New("slot not found in turf catalog")

// ErrBookingNotFound is returned for status transitions on an unknown booking.
var ErrBookingNotFound = errors.New("booking not found")

// ErrInvalidTransition is returned when a status transition is requested
// on a booking that has already reached a terminal status.
var ErrInvalidTransition = errors.New("booking is not in a transitionable status")

// ValidationError reports a malformed or missing booking field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError marks a durable-store failure as transient so callers at
// the transport boundary can decide to retry. The core never retries.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
