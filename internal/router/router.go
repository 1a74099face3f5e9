// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation-admin/internal/handler"
)

// RegisterRoutes registers the health check on the provided Echo
// instance.  Load balancers and monitoring systems use it to verify the
// service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBookings registers the reservation admin endpoints under /v1.
// There is no authentication layer here; the admin tool runs behind the
// hotel's own network boundary.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler) {
	g := e.Group("/v1")

	// list views and single records
	g.GET("/bookings", h.ListBookings)
	g.GET("/bookings/:id", h.GetBooking)

	// creation and editing
	g.POST("/bookings", h.CreateBooking)
	g.PATCH("/bookings/:id", h.UpdateBooking)

	// lifecycle transitions
	g.POST("/bookings/:id/confirm", h.ConfirmBooking)
	g.POST("/bookings/:id/cancel", h.CancelBooking)
	g.POST("/bookings/:id/check-in", h.CheckInBooking)
	g.POST("/bookings/:id/check-out", h.CheckOutBooking)

	// payment axis, deletion and bulk operations
	g.PATCH("/bookings/:id/payment", h.SetPaymentStatus)
	g.DELETE("/bookings/:id", h.DeleteBooking)
	g.POST("/bookings/bulk-delete", h.BulkDeleteBookings)

	// directories consumed by the booking form
	g.GET("/rooms", h.ListRooms)
	g.GET("/customers", h.ListCustomers)
	g.POST("/customers", h.CreateCustomer)
}
