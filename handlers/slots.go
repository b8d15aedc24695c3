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

// SlotHandler exposes catalog management and availability endpoints.
type SlotHandler struct {
	Catalog catalog.Service
	Booking booking.Service
}

// NewSlotHandler creates a new SlotHandler instance.
func NewSlotHandler(catalogSvc catalog.Service, bookingSvc booking.Service) *SlotHandler {
	return &SlotHandler{Catalog: catalogSvc, Booking: bookingSvc}
}

// DefineSlotsHandler replaces a turf's entire slot catalog.
func (h *SlotHandler) DefineSlotsHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	if ownerID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Owner not authenticated", "")
		return
	}

	var req models.DefineSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	cat, err := h.Catalog.DefineSlots(c.Request.Context(), req.TurfID, ownerID, req.Slots)
	if err != nil {
		var verr *catalog.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid slot definition", verr.Error())
		case errors.Is(err, catalog.ErrTurfNotFound):
			utils.JSONError(c, http.StatusNotFound, "Turf not found", "")
		case errors.Is(err, catalog.ErrNotOwner):
			utils.JSONError(c, http.StatusForbidden, "Turf does not belong to this owner", "")
		default:
			utils.GetLogger().Error("failed to define slots", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to save slots", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slots updated", "catalog": cat})
}

// GetCatalogHandler returns the raw slot template for a turf.
func (h *SlotHandler) GetCatalogHandler(c *gin.Context) {
	cat, err := h.Catalog.GetCatalog(c.Request.Context(), c.Param("turfId"))
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogNotFound) {
			utils.JSONError(c, http.StatusNotFound, "No slots defined for this turf", "")
			return
		}
		utils.GetLogger().Error("failed to fetch catalog", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch slots", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"catalog": cat})
}

// GetAvailabilityHandler annotates a turf's slots with bookability for
// the date given in the "date" query parameter.
func (h *SlotHandler) GetAvailabilityHandler(c *gin.Context) {
	turfID := c.Param("turfId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Date is required", "")
		return
	}

	slots, err := h.Booking.Resolve(c.Request.Context(), turfID, date)
	if err != nil {
		var verr *booking.ValidationError
		var serr *booking.StorageError
		switch {
		case errors.As(err, &verr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", verr.Error())
		case errors.Is(err, catalog.ErrCatalogNotFound):
			utils.JSONError(c, http.StatusNotFound, "No slots defined for this turf", "")
		case errors.As(err, &serr):
			utils.GetLogger().Error("availability lookup failed", zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, "Temporary failure, please retry", "")
		default:
			utils.GetLogger().Error("availability lookup failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
