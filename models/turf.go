package models

import "time"

// Turf represents a bookable sports venue registered by an owner.
type Turf struct {
	ID              string    `bson:"id" json:"id"`
	OwnerID         string    `bson:"owner_id" json:"owner_id"`
	Name            string    `bson:"name" json:"name"`
	Location        string    `bson:"location" json:"location"`
	Address         string    `bson:"address" json:"address"`
	City            string    `bson:"city" json:"city"`
	State           string    `bson:"state" json:"state"`
	Pincode         string    `bson:"pincode" json:"pincode"`
	Sports          []string  `bson:"sports" json:"sports"`
	Amenities       []string  `bson:"amenities" json:"amenities"`
	PricePerHour    float64   `bson:"price_per_hour" json:"price_per_hour"`
	MinBookingPrice float64   `bson:"min_booking_price" json:"min_booking_price"`
	Description     string    `bson:"description" json:"description"`
	Images          []string  `bson:"images" json:"images"` // cloudinary public IDs
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// RegisterTurfRequest is the turf registration payload.
type RegisterTurfRequest struct {
	Name            string   `json:"name" binding:"required"`
	Location        string   `json:"location"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Pincode         string   `json:"pincode"`
	Sports          []string `json:"sports"`
	Amenities       []string `json:"amenities"`
	PricePerHour    float64  `json:"price_per_hour"`
	MinBookingPrice float64  `json:"min_booking_price" binding:"required"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
}

// UpdateTurfRequest carries partial turf updates. Nil fields are left
// untouched; Images replaces the whole list when present.
type UpdateTurfRequest struct {
	Name            *string   `json:"name"`
	Location        *string   `json:"location"`
	Address         *string   `json:"address"`
	City            *string   `json:"city"`
	State           *string   `json:"state"`
	Pincode         *string   `json:"pincode"`
	Sports          *[]string `json:"sports"`
	Amenities       *[]string `json:"amenities"`
	PricePerHour    *float64  `json:"price_per_hour"`
	MinBookingPrice *float64  `json:"min_booking_price"`
	Description     *string   `json:"description"`
	Images          *[]string `json:"images"`
}
