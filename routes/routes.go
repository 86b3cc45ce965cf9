package routes

import (
	"net/http"
	"time"

	"weddingconsole/handlers"
	"weddingconsole/middleware"
	"weddingconsole/models"
	"weddingconsole/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-up, login and logout for both account roles.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	providers := r.Group("/api/service-providers")
	{
		providers.POST("/register", hb.Auth.Register(models.RoleServiceProvider))
		providers.POST("/login", hb.Auth.Login(models.RoleServiceProvider))
	}
	managers := r.Group("/api/hall-managers")
	{
		managers.POST("/register", hb.Auth.Register(models.RoleHallManager))
		managers.POST("/login", hb.Auth.Login(models.RoleHallManager))
	}
	r.POST("/api/auth/logout", middleware.JWTAuthRoleMiddleware(hb.AuthService), hb.Auth.Logout)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/dashboard", hb.Admin.Dashboard)
		adminGroup.PUT("/:kind/:id/status", hb.Admin.Decide)
		adminGroup.PATCH("/service-providers/:id", hb.Admin.EditServiceProvider)
		adminGroup.PATCH("/hall-managers/:id", hb.Admin.EditHallManager)
		adminGroup.PATCH("/bookings/:id", hb.Admin.EditBooking)
		adminGroup.DELETE("/:kind/:id", hb.Admin.Delete)
	}
}

// RegisterHallManagerRoutes sets up the hall-manager dashboard endpoints.
func RegisterHallManagerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	group := r.Group("/api/hall-manager")
	{
		group.Use(middleware.JWTAuthRoleMiddleware(hb.AuthService, models.RoleHallManager))
		group.GET("/dashboard", hb.HallManager.Dashboard)
		group.PATCH("/hall", hb.HallManager.UpdateHall)
		group.PUT("/bookings/:id/status", hb.HallManager.DecideBooking)
	}
}

// RegisterServiceProviderRoutes sets up the service-provider dashboard endpoints.
func RegisterServiceProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	group := r.Group("/api/service-provider")
	{
		group.Use(middleware.JWTAuthRoleMiddleware(hb.AuthService, models.RoleServiceProvider))
		group.GET("/dashboard", hb.ServiceProvider.Dashboard)
		group.PATCH("/profile", hb.ServiceProvider.UpdateProfile)
		group.PUT("/bookings/:id/toggle", hb.ServiceProvider.ToggleBooking)
	}
}

// RegisterBookingRoutes sets up the public booking form.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	halls := r.Group("/api/halls")
	{
		halls.GET("/:id/booking-form", hb.Booking.Form)
		halls.POST("/:id/bookings", hb.Booking.Submit)
	}
}

// RegisterHealthRoute registers a health-check endpoint reporting the last Mongo and Redis ping.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		switch {
		case health.CheckedAt.IsZero():
			c.JSON(http.StatusOK, gin.H{"status": "starting"})
		case health.Mongo && health.Redis:
			c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": health})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": health})
		}
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHallManagerRoutes(r, hb)
	RegisterServiceProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
