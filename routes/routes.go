package routes

import (
	"time"

	"appointments/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the HTTP surface. The CORS policy is open: any
// origin, credentials allowed.
func RegisterRoutes(r *gin.Engine, h *handlers.SchedulingHandler, status *handlers.StatusHandler) {
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", status.Root)
	r.GET("/test", status.Test)
	r.GET("/health", status.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/services", h.ListServices)
		api.POST("/services", h.CreateService)
		api.GET("/services/:service_id/slots", h.GetFreeSlots)

		api.GET("/availability", h.ListAvailability)
		api.POST("/availability", h.CreateAvailability)

		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings", h.CreateBooking)
	}
}
