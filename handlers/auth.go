package handlers

import (
	"errors"
	"net/http"

	"turfbook/models"
	"turfbook/services/user"
	"turfbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes signup and login endpoints.
type AuthHandler struct {
	Service user.Service
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrUserExists) {
			utils.JSONError(c, http.StatusBadRequest, "User already exists", "")
			return
		}
		utils.GetLogger().Error("registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": created})
}

func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid phone or password", "")
			return
		}
		utils.GetLogger().Error("login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": resp.User, "token": resp.Token})
}

// GetProfileHandler returns the authenticated user's own record.
func (h *AuthHandler) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "User not authenticated", "")
		return
	}

	usr, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		utils.GetLogger().Error("failed to fetch profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": usr})
}
