package handlers

import (
	"errors"
	"net/http"

	"turfbook/models"
	"turfbook/services/turf"
	"turfbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TurfHandler exposes turf registration, lookup and update endpoints.
type TurfHandler struct {
	Service turf.Service
}

// NewTurfHandler creates a new TurfHandler instance.
func NewTurfHandler(svc turf.Service) *TurfHandler {
	return &TurfHandler{Service: svc}
}

func (h *TurfHandler) RegisterTurfHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	if ownerID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Owner not authenticated", "")
		return
	}

	var req models.RegisterTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Register(c.Request.Context(), ownerID, req)
	if err != nil {
		utils.GetLogger().Error("turf registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register turf", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Turf registered", "turf": created})
}

func (h *TurfHandler) UpdateTurfHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	turfID := c.Param("turfId")

	var req models.UpdateTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), turfID, ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, turf.ErrTurfNotFound):
			utils.JSONError(c, http.StatusNotFound, "Turf not found", "")
		case errors.Is(err, turf.ErrNotOwner):
			utils.JSONError(c, http.StatusForbidden, "Turf does not belong to this owner", "")
		default:
			utils.GetLogger().Error("turf update failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Server error while updating turf", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Turf updated successfully", "turf": updated})
}

func (h *TurfHandler) GetAllTurfsHandler(c *gin.Context) {
	turfs, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to fetch turfs", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch turfs", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"turfs": turfs})
}

func (h *TurfHandler) GetTurfByIDHandler(c *gin.Context) {
	rec, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, turf.ErrTurfNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Turf not found", "")
			return
		}
		utils.GetLogger().Error("failed to fetch turf", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch turf", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"turf": rec})
}

func (h *TurfHandler) GetTurfsByOwnerHandler(c *gin.Context) {
	turfs, err := h.Service.GetByOwner(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		utils.GetLogger().Error("failed to fetch owner turfs", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch turfs", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"turfs": turfs})
}
