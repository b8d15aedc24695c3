package handlers

import (
	"errors"
	"net/http"

	"turfbook/models"
	"turfbook/services/booking"
	"turfbook/services/catalog"
	"turfbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler handles booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.Service
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler books a slot for the authenticated user.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "User not authenticated", "")
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	bk, err := h.Service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		var verr *booking.ValidationError
		var serr *booking.StorageError
		switch {
		case errors.As(err, &verr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", verr.Error())
		case errors.Is(err, booking.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "Slot is already booked for this date", "")
		case errors.Is(err, booking.ErrSlotNotFound):
			utils.JSONError(c, http.StatusNotFound, "Slot not found for this turf", "")
		case errors.Is(err, catalog.ErrCatalogNotFound):
			utils.JSONError(c, http.StatusNotFound, "No slots defined for this turf", "")
		case errors.As(err, &serr):
			utils.GetLogger().Error("booking storage failure", zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, "Temporary failure, please retry", "")
		default:
			utils.GetLogger().Error("failed to create booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking confirmed", "booking": bk})
}

// GetUserBookingsHandler lists the authenticated user's bookings.
func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "User not authenticated", "")
		return
	}

	bookings, err := h.Service.GetBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch user bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetOwnerBookingsHandler lists bookings across all turfs of the
// authenticated owner.
func (h *BookingHandler) GetOwnerBookingsHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	if ownerID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Owner not authenticated", "")
		return
	}

	bookings, err := h.Service.GetBookingsForOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch owner bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetTurfDateBookingsHandler lists bookings for a turf on a given date.
func (h *BookingHandler) GetTurfDateBookingsHandler(c *gin.Context) {
	turfID := c.Param("turfId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Date is required", "")
		return
	}

	bookings, err := h.Service.GetBookingsForTurfAndDate(c.Request.Context(), turfID, date)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", verr.Error())
			return
		}
		utils.GetLogger().Error("failed to fetch turf bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler cancels a confirmed booking and frees its slot.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bk, err := h.Service.CancelBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		h.respondTransitionError(c, err, "cancel")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": bk})
}

// CompleteBookingHandler marks a confirmed booking as completed.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	bk, err := h.Service.CompleteBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		h.respondTransitionError(c, err, "complete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking completed", "booking": bk})
}

func (h *BookingHandler) respondTransitionError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Booking is not in a transitionable state", "")
	default:
		utils.GetLogger().Error("failed to "+action+" booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking", "")
	}
}
