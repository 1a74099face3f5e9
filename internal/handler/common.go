// Package handler defines the HTTP surface of the reservation admin
// core.  Handlers stay thin: they bind and parse input, load state
// through the repositories, apply the pure domain operations from the
// booking and query packages, persist the result and publish events on
// the bus.  All error mapping to HTTP status codes happens here.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation-admin/internal/booking"
	"github.com/iliyamo/hotel-reservation-admin/internal/event"
	"github.com/iliyamo/hotel-reservation-admin/internal/repository"
)

// BookingHandler bundles the dependencies of every booking endpoint.
// Now is injectable so tests and back-dated operations get a stable
// clock; when nil, time.Now is used.
type BookingHandler struct {
	Bookings  *repository.BookingRepo
	Rooms     *repository.RoomRepo
	Customers *repository.CustomerRepo
	Bus       *event.Bus
	Now       func() time.Time
}

// NewBookingHandler constructs a BookingHandler and panics if any
// repository is nil.  The bus may be nil in tests that do not observe
// events.
func NewBookingHandler(bookings *repository.BookingRepo, rooms *repository.RoomRepo, customers *repository.CustomerRepo, bus *event.Bus) *BookingHandler {
	if bookings == nil || rooms == nil || customers == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{
		Bookings:  bookings,
		Rooms:     rooms,
		Customers: customers,
		Bus:       bus,
		Now:       time.Now,
	}
}

func (h *BookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// publish emits on the bus when one is wired.  Event delivery is
// best-effort by contract, so there is nothing to surface to the client.
func (h *BookingHandler) publish(topic event.Topic, payload any) {
	if h.Bus != nil {
		h.Bus.Publish(topic, payload)
	}
}

// parseID reads the :id path parameter as a positive integer.
func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// parseDate reads a "YYYY-MM-DD" calendar date.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// domainError translates domain and repository failures into the
// response contract: validation problems are surfaced verbatim with
// their field map, rejected transitions name the current status and the
// attempted action, missing records become 404s and everything else is a
// generic 500 so internal details never leak.
func domainError(c echo.Context, err error) error {
	if ve := booking.IsValidationError(err); ve != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": ve.Fields(),
		})
	}
	if ite := booking.IsInvalidTransition(err); ite != nil {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":          ite.Error(),
			"current_status": ite.From,
			"action":         ite.Action,
		})
	}
	switch {
	case errors.Is(err, repository.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case errors.Is(err, repository.ErrRoomNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	case errors.Is(err, repository.ErrCustomerNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
