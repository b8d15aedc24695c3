package routes

import (
	"net/http"
	"time"

	"turfbook/handlers"
	"turfbook/middleware"
	"turfbook/models"
	"turfbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user registration, login and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.GetProfileHandler)
	}
}

// RegisterTurfRoutes registers turf discovery and management endpoints.
func RegisterTurfRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/turfs")
	{
		// Public discovery endpoints.
		api.GET("", hb.Turf.GetAllTurfsHandler)
		api.GET("/id/:id", hb.Turf.GetTurfByIDHandler)

		// Endpoints that modify turf data require an owner account.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleOwner, models.RoleAdmin))
		protected.POST("/register", hb.Turf.RegisterTurfHandler)
		protected.PATCH("/update/:turfId", hb.Turf.UpdateTurfHandler)
		protected.GET("/owner/:ownerId", hb.Turf.GetTurfsByOwnerHandler)
	}
}

// RegisterSlotRoutes registers slot catalog and availability endpoints.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/slots")
	{
		// Public read endpoints.
		api.GET("/catalog/:turfId", hb.Slot.GetCatalogHandler)
		api.GET("/availability/:turfId", hb.Slot.GetAvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleOwner, models.RoleAdmin))
		protected.PUT("/define", hb.Slot.DefineSlotsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking ledger.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/user", hb.Booking.GetUserBookingsHandler)

		owner := api.Group("")
		owner.Use(middleware.RequireRoles(models.RoleOwner, models.RoleAdmin))
		owner.GET("/owner", hb.Booking.GetOwnerBookingsHandler)
		owner.GET("/turf/:turfId", hb.Booking.GetTurfDateBookingsHandler)
		owner.PUT("/cancel/:bookingId", hb.Booking.CancelBookingHandler)
		owner.PUT("/complete/:bookingId", hb.Booking.CompleteBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleAdmin))
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
		adminGroup.GET("/turfs", hb.Admin.GetAllTurfsHandler)
		adminGroup.GET("/bookings", hb.Admin.GetAllBookingsHandler)
		adminGroup.GET("/catalogs", hb.Admin.GetAllCatalogsHandler)
	}
}

// RegisterStorageRoutes registers image upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/upload/:bucket", hb.Storage.UploadFileHandler)
		api.DELETE("/delete", hb.Storage.DeleteFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterTurfRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
