package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/handlers"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Resources *handlers.ResourceHandler
	Users     *handlers.UserHandler
	Bookings  *handlers.BookingHandler
	Slots     *handlers.SlotHandler
	AuditLogs *handlers.AuditLogsHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", h.Health.Check)

	// ======================================================
	// RESOURCES
	// ======================================================
	r.GET("/resources", h.Resources.List)
	r.POST("/resources", h.Resources.Create)
	r.PUT("/resources", h.Resources.Update)
	r.DELETE("/resources", h.Resources.Delete)

	// ======================================================
	// USERS
	// ======================================================
	r.GET("/users", h.Users.List)
	r.POST("/users", h.Users.Create)
	r.PUT("/users", h.Users.Update)
	r.DELETE("/users", h.Users.Delete)

	// ======================================================
	// BOOKINGS
	// ======================================================
	r.GET("/bookings", h.Bookings.List)
	r.POST("/bookings", h.Bookings.Create)
	r.PUT("/bookings", h.Bookings.Update)
	r.DELETE("/bookings", h.Bookings.Delete)

	// ======================================================
	// SLOTS (read only, written by the generator)
	// ======================================================
	r.GET("/slots", h.Slots.List)

	r.GET("/audit-logs", h.AuditLogs.List)
}
