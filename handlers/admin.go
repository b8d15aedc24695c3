package handlers

import (
	"net/http"

	"turfbook/services/booking"
	"turfbook/services/catalog"
	"turfbook/services/turf"
	"turfbook/services/user"
	"turfbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes platform-wide read endpoints for admins.
type AdminHandler struct {
	Users    user.Service
	Turfs    turf.Service
	Bookings booking.Service
	Catalogs catalog.Service
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(users user.Service, turfs turf.Service, bookings booking.Service, catalogs catalog.Service) *AdminHandler {
	return &AdminHandler{Users: users, Turfs: turfs, Bookings: bookings, Catalogs: catalogs}
}

// GetAllUsersHandler lists every registered user.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetAllTurfsHandler lists every turf regardless of owner.
func (h *AdminHandler) GetAllTurfsHandler(c *gin.Context) {
	turfs, err := h.Turfs.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list turfs", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch turfs", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"turfs": turfs})
}

// GetAllBookingsHandler lists every booking on the platform.
func (h *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.GetAllBookings(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetAllCatalogsHandler lists every turf's slot catalog.
func (h *AdminHandler) GetAllCatalogsHandler(c *gin.Context) {
	catalogs, err := h.Catalogs.GetAllCatalogs(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list catalogs", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch catalogs", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"catalogs": catalogs})
}
