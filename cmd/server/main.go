// @title           Painter Booking Backend API
// @version         1.0.0
// @description     REST backend matching customers with painters: accounts for both roles, profile and gallery images, and a booking lifecycle with painter-gated status transitions.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"net/http"
	"net/url"
	"os"

	"painter-booking-backend/docs"
	"painter-booking-backend/internal/app"
	"painter-booking-backend/internal/config"
	"painter-booking-backend/internal/database"
	"painter-booking-backend/internal/handlers"
	"painter-booking-backend/internal/middleware"
	"painter-booking-backend/internal/services"
	"painter-booking-backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with the deployed base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize database client", zap.Error(err))
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to initialize migrator", zap.Error(err))
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		logger.Fatal("migration failed", zap.Error(err))
	}
	migrator.Close()
	logger.Info("migrations completed")

	// Image storage is optional: without it, uploads are rejected but the
	// rest of the API works and legacy bare-filename references are still
	// served from the local uploads directory.
	var imageService *services.ImageService
	if cfg.SupabaseURL != "" && cfg.SupabaseServiceKey != "" {
		storageClient, err := storage.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		if err != nil {
			logger.Fatal("failed to initialize storage client", zap.Error(err))
		}
		imageService = services.NewImageService(storageClient, logger)
	} else {
		logger.Warn("SUPABASE_URL not set, image uploads disabled")
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		logger.Warn("failed to create uploads directory", zap.Error(err))
	}

	customersHandler := handlers.NewCustomersHandler(dbClient, imageService, cfg, logger)
	paintersHandler := handlers.NewPaintersHandler(dbClient, imageService, cfg, logger)
	bookingsHandler := handlers.NewBookingsHandler(dbClient, dbClient)
	adminHandler := handlers.NewAdminHandler(dbClient, cfg)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	// Legacy local uploads
	router.Static("/uploads", cfg.UploadsDir)

	api := router.Group("/api/v1")

	// Public
	api.POST("/customers/register", customersHandler.Register)
	api.POST("/customers/login", customersHandler.Login)
	api.POST("/painters/signup", paintersHandler.Signup)
	api.POST("/painters/login", paintersHandler.Login)
	api.GET("/painters", paintersHandler.ListPainters)
	api.GET("/painters/:id", paintersHandler.GetPainter)
	api.GET("/painters/:id/gallery", paintersHandler.GetPainterGallery)
	api.POST("/painters/:id/book", bookingsHandler.CreatePublic)
	api.POST("/admin/signup", adminHandler.Signup)
	api.POST("/admin/login", adminHandler.Login)

	// Customer routes
	customerAuth := api.Group("")
	customerAuth.Use(middleware.CustomerAuth(cfg, dbClient))
	customerAuth.GET("/customers/me", customersHandler.GetProfile)
	customerAuth.PUT("/customers/me", customersHandler.UpdateProfile)
	customerAuth.POST("/customers/logout", customersHandler.Logout)
	customerAuth.POST("/bookings", bookingsHandler.Create)
	customerAuth.GET("/bookings/my", bookingsHandler.CustomerBookings)

	// Painter routes
	painterAuth := api.Group("")
	painterAuth.Use(middleware.PainterAuth(cfg, dbClient))
	painterAuth.GET("/painter/profile", paintersHandler.GetProfile)
	painterAuth.PUT("/painter/profile", paintersHandler.UpdateProfile)
	painterAuth.POST("/painter/logout", paintersHandler.Logout)
	painterAuth.POST("/painter/gallery", paintersHandler.AddGalleryImage)
	painterAuth.GET("/painter/gallery", paintersHandler.GetGallery)
	painterAuth.PUT("/painter/gallery/:image_id", paintersHandler.UpdateGalleryImage)
	painterAuth.DELETE("/painter/gallery/:image_id", paintersHandler.DeleteGalleryImage)
	painterAuth.GET("/painter/bookings", bookingsHandler.PainterBookings)
	painterAuth.PUT("/bookings/:booking_id/status", bookingsHandler.UpdateStatus)

	// Admin routes
	adminAuth := api.Group("/admin")
	adminAuth.Use(middleware.AdminAuth(cfg, dbClient))
	adminAuth.GET("/stats", adminHandler.Stats)
	adminAuth.GET("/customers", adminHandler.ListCustomers)
	adminAuth.DELETE("/customers/:id", adminHandler.DeleteCustomer)
	adminAuth.GET("/painters", adminHandler.ListPainters)
	adminAuth.PUT("/painters/:id/status", adminHandler.UpdatePainterStatus)
	adminAuth.DELETE("/painters/:id", adminHandler.DeletePainter)
	adminAuth.GET("/bookings", adminHandler.ListBookings)
	adminAuth.DELETE("/bookings/:id", adminHandler.CancelBooking)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
