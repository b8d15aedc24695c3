package models

import "time"

// Slot is a fixed time window with a price, defined once per turf as a
// template independent of date. Start and End are zero-padded 24-hour
// wall-clock times ("HH:MM").
type Slot struct {
	ID        string  `bson:"id" json:"id"`
	Start     string  `bson:"start" json:"start"`
	End       string  `bson:"end" json:"end"`
	Price     float64 `bson:"price" json:"price"`
	Available bool    `bson:"available" json:"available"`
}

// SlotCatalog is the master slot list for one turf. A resubmission
// replaces the entire sequence (last write wins, never merged).
type SlotCatalog struct {
	ID        string    `bson:"id" json:"id"`
	TurfID    string    `bson:"turf_id" json:"turf_id"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Slots     []Slot    `bson:"slots" json:"slots"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SlotInput is one slot definition as submitted by an owner.
type SlotInput struct {
	Start string  `json:"start" binding:"required"`
	End   string  `json:"end" binding:"required"`
	Price float64 `json:"price"`
}

// DefineSlotsRequest is the payload for replacing a turf's slot catalog.
type DefineSlotsRequest struct {
	TurfID string      `json:"turf_id" binding:"required"`
	Slots  []SlotInput `json:"slots" binding:"required"`
}

// AvailableSlot is one catalog slot annotated with bookability for a
// specific date. Returned in catalog order.
type AvailableSlot struct {
	SlotID    string  `json:"id"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}
