package routes

import (
	"slotb/internal/api/handlers"
	"slotb/internal/api/middleware"
	"slotb/internal/appconfig"
	"slotb/internal/config"
	"slotb/internal/services"
	"slotb/internal/store"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, st *store.Store, configStore *appconfig.Store) {
	// Initialize services
	authService := services.NewAuthService(cfg, st)
	bookingService := services.NewBookingService(st)
	userService := services.NewUserService(cfg, st)
	adminService := services.NewAdminService(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	profileHandler := handlers.NewProfileHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService)
	appConfigHandler := handlers.NewAppConfigHandler(configStore)

	// Middleware
	r.Use(middleware.CORSMiddleware())

	// Public routes
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"message": "sLOt[B] API is running",
			})
		})

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/config", appConfigHandler.Get)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		// Booking routes
		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bookingHandler.List)
			bookings.GET("/date/:date", bookingHandler.ListByDate)
			bookings.GET("/recent", bookingHandler.Recent)
			bookings.POST("", bookingHandler.Create)
			bookings.PUT("/:id", bookingHandler.Update)
			bookings.DELETE("/:id", bookingHandler.Delete)
		}

		// Profile routes
		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.Get)
			profile.PUT("", profileHandler.Update)
			profile.PUT("/password", profileHandler.ChangePassword)
			profile.POST("/avatar", profileHandler.UploadAvatar)
		}

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.GetUsers)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
		}

		// Config updates are admin-only; reads stay public above
		protected.PUT("/config", middleware.RequireAdmin(), appConfigHandler.Update)
	}
}
