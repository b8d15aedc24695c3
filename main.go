package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turfbook/config"
	"turfbook/database"
	bookingRepoPkg "turfbook/database/repository/booking"
	catalogRepoPkg "turfbook/database/repository/catalog"
	turfRepoPkg "turfbook/database/repository/turf"
	userRepoPkg "turfbook/database/repository/user"
	"turfbook/handlers"
	"turfbook/middleware"
	"turfbook/routes"
	"turfbook/services/booking"
	"turfbook/services/catalog"
	"turfbook/services/storage"
	"turfbook/services/turf"
	"turfbook/services/user"
	"turfbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	turfRepo := turfRepoPkg.NewMongoTurfRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	turfService := &turf.DefaultTurfService{
		Repo: turfRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:  catalogRepo,
		Turfs: turfRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Catalogs: catalogRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Turf:     handlers.NewTurfHandler(turfService),
		Slot:     handlers.NewSlotHandler(catalogService, bookingService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Admin:    handlers.NewAdminHandler(userService, turfService, bookingService, catalogService),
		Storage:  handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
