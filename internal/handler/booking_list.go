package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation-admin/internal/query"
)

// ListBookings handles GET /v1/bookings.  Query parameters:
//
//	search      - case-insensitive substring over booking number,
//	              customer name, customer email and room number
//	status      - exact booking status, or "all" (default)
//	date_bucket - all | today | this_week | this_month
//	sort_by     - checkIn | checkOut | totalAmount | status | customer |
//	              createdAt (default)
//	sort_dir    - asc (default) | desc
//
// Filtering and sorting run in memory over the joined view rows, so the
// response is a deterministic snapshot: same data and parameters, same
// order, with ties on the sort key kept in creation order.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	rows, err := h.Bookings.ListView(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}

	filter := query.Filter{
		Search:     c.QueryParam("search"),
		Status:     c.QueryParam("status"),
		DateBucket: query.ParseDateBucket(c.QueryParam("date_bucket")),
	}
	view := filter.Apply(rows, h.now())

	sortKey := query.ParseSortKey(c.QueryParam("sort_by"))
	descending := strings.EqualFold(c.QueryParam("sort_dir"), "desc")
	view = query.Sort(view, sortKey, descending)

	return c.JSON(http.StatusOK, echo.Map{
		"bookings": view,
		"total":    len(view),
	})
}

// GetBooking handles GET /v1/bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}
