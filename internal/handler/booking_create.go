package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation-admin/internal/booking"
	"github.com/iliyamo/hotel-reservation-admin/internal/event"
	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

// CreateBooking handles POST /v1/bookings.  It resolves the customer and
// room, runs the domain constructor (validation, pricing, booking number
// assignment) and persists the result.  On success the booking.created
// event is published and the full booking is returned with 201.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var body struct {
		CustomerID    uint64       `json:"customer_id"`
		RoomID        uint64       `json:"room_id"`
		CheckInDate   string       `json:"check_in_date"`
		CheckOutDate  string       `json:"check_out_date"`
		CheckInTime   string       `json:"check_in_time"`
		CheckOutTime  string       `json:"check_out_time"`
		Guests        model.Guests `json:"guests"`
		PaymentMethod string       `json:"payment_method"`
		Notes         string       `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	in := booking.CreateInput{
		CustomerID:    body.CustomerID,
		RoomID:        body.RoomID,
		CheckInTime:   body.CheckInTime,
		CheckOutTime:  body.CheckOutTime,
		Guests:        body.Guests,
		PaymentMethod: body.PaymentMethod,
		Notes:         body.Notes,
	}
	if s := strings.TrimSpace(body.CheckInDate); s != "" {
		d, err := parseDate(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in_date format, want YYYY-MM-DD"})
		}
		in.CheckInDate = d
	}
	if s := strings.TrimSpace(body.CheckOutDate); s != "" {
		d, err := parseDate(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out_date format, want YYYY-MM-DD"})
		}
		in.CheckOutDate = d
	}

	// Missing references are reported by the domain constructor as
	// validation errors; only resolve the ones that were provided.
	ctx := c.Request().Context()
	if in.CustomerID != 0 {
		if _, err := h.Customers.GetByID(ctx, in.CustomerID); err != nil {
			return domainError(c, err)
		}
	}
	var room model.Room
	if in.RoomID != 0 {
		r, err := h.Rooms.GetByID(ctx, in.RoomID)
		if err != nil {
			return domainError(c, err)
		}
		room = *r
	}

	b, err := booking.New(in, room, h.now())
	if err != nil {
		return domainError(c, err)
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		return domainError(c, err)
	}

	h.publish(event.TopicBookingCreated, event.BookingCreated{
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
	})
	return c.JSON(http.StatusCreated, b)
}

// UpdateBooking handles PATCH /v1/bookings/:id.  Only the fields present
// in the body are changed; a date or room change reprices the booking
// through the pricing engine.  The booking number never changes.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		CheckInDate  *string       `json:"check_in_date"`
		CheckOutDate *string       `json:"check_out_date"`
		CheckInTime  *string       `json:"check_in_time"`
		CheckOutTime *string       `json:"check_out_time"`
		RoomID       *uint64       `json:"room_id"`
		Guests       *model.Guests `json:"guests"`
		Notes        *string       `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	in := booking.EditInput{
		CheckInTime:  body.CheckInTime,
		CheckOutTime: body.CheckOutTime,
		RoomID:       body.RoomID,
		Guests:       body.Guests,
		Notes:        body.Notes,
	}
	if body.CheckInDate != nil {
		d, err := parseDate(*body.CheckInDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in_date format, want YYYY-MM-DD"})
		}
		in.CheckInDate = &d
	}
	if body.CheckOutDate != nil {
		d, err := parseDate(*body.CheckOutDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out_date format, want YYYY-MM-DD"})
		}
		in.CheckOutDate = &d
	}

	ctx := c.Request().Context()
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return domainError(c, err)
	}

	// Resolve the room the booking will reference after the edit: the new
	// one when the room changes, the current one otherwise (its rates are
	// needed for repricing either way).
	roomID := b.RoomID
	if body.RoomID != nil {
		roomID = *body.RoomID
	}
	room, err := h.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return domainError(c, err)
	}

	if err := booking.ApplyEdit(b, in, *room); err != nil {
		return domainError(c, err)
	}
	if err := h.Bookings.Save(ctx, b); err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}
