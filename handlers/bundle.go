package handlers

import (
	userRepoPkg "turfbook/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct so that
// route registration only needs a single value.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth    *AuthHandler
	Turf    *TurfHandler
	Slot    *SlotHandler
	Booking *BookingHandler
	Admin   *AdminHandler
	Storage *StorageHandler
}
