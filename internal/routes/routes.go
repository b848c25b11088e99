package routes

import (
	"github.com/labstack/echo/v4"

	"dukaadmin/internal/handlers"
)

// SetupRoutes mounts the API surface. The review list, stats, and status
// board are public so the app can read them without a session; everything
// that mutates state sits behind the gate.
func SetupRoutes(api *echo.Group, h *handlers.Handler) {
	api.GET("/health", h.HealthCheck)

	// Auth
	api.POST("/login", h.Login)
	api.GET("/check-auth", h.CheckAuth)
	api.POST("/logout", h.Logout)

	// Public reads
	api.GET("/stats", h.Stats)
	api.GET("/reviews", h.ListReviews)
	api.GET("/service-status", h.GetServiceStatus)

	// Protected routes
	protected := api.Group("", h.Gate().Middleware)
	protected.POST("/send-notification", h.SendNotification)
	protected.GET("/notifications", h.ListNotifications)
	protected.PUT("/notifications/:id", h.UpdateNotification)
	protected.DELETE("/notifications/:id", h.DeleteNotification)

	protected.GET("/config", h.GetConfig)
	protected.POST("/update-config", h.UpdateConfig)

	protected.POST("/reviews", h.CreateReview)
	protected.PUT("/reviews/:id/approve", h.ApproveReview)
	protected.DELETE("/reviews/:id", h.DeleteReview)

	protected.POST("/coupons", h.CreateCoupon)
	protected.GET("/coupons", h.ListCoupons)
	protected.DELETE("/coupons/:id", h.DeleteCoupon)

	protected.POST("/user/points", h.AddUserPoints)
	protected.POST("/service-status", h.UpdateServiceStatus)
}
