package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation-admin/internal/booking"
	"github.com/iliyamo/hotel-reservation-admin/internal/event"
	"github.com/iliyamo/hotel-reservation-admin/internal/model"
	"github.com/iliyamo/hotel-reservation-admin/internal/pricing"
)

// applyTransition loads the booking, runs the given domain operation,
// persists the result and publishes booking.statusChanged.  Every
// lifecycle endpoint funnels through here so the check+apply+persist+
// notify cycle is identical across transitions.
func (h *BookingHandler) applyTransition(c echo.Context, op func(b *model.Booking) error) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return domainError(c, err)
	}
	if err := op(b); err != nil {
		return domainError(c, err)
	}
	if err := h.Bookings.Save(ctx, b); err != nil {
		return domainError(c, err)
	}
	h.publish(event.TopicBookingStatusChanged, event.BookingStatusChanged{
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		NewStatus:     b.Status,
		RoomID:        b.RoomID,
	})
	return c.JSON(http.StatusOK, b)
}

// ConfirmBooking handles POST /v1/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	return h.applyTransition(c, booking.Confirm)
}

// CancelBooking handles POST /v1/bookings/:id/cancel.  Cancel is the
// soft counterpart to delete: the record stays and can still be listed
// and eventually deleted.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	return h.applyTransition(c, booking.Cancel)
}

// CheckInBooking handles POST /v1/bookings/:id/check-in.  The body must
// carry a non-empty room_key; check_in_time optionally back-dates the
// actual arrival and additional_guests lists walk-ins added at the desk.
func (h *BookingHandler) CheckInBooking(c echo.Context) error {
	var body struct {
		RoomKey          string   `json:"room_key"`
		CheckInTime      string   `json:"check_in_time"`
		AdditionalGuests []string `json:"additional_guests"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	in := booking.CheckInInput{
		RoomKey:          body.RoomKey,
		AdditionalGuests: body.AdditionalGuests,
	}
	if body.CheckInTime != "" {
		t, err := time.Parse(time.RFC3339, body.CheckInTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in_time format, want RFC3339"})
		}
		in.ActualCheckIn = t
	}
	return h.applyTransition(c, func(b *model.Booking) error {
		return booking.CheckIn(b, in, h.now())
	})
}

// CheckOutBooking handles POST /v1/bookings/:id/check-out.  The body
// must carry a valid room_condition; check_out_time optionally overrides
// the actual departure and damages lists what housekeeping found.
//
// The recompute at check-out needs a rate table, and which rate applies
// is an explicit choice: by default the nightly rate snapshotted when
// the booking was made is used, while use_current_rate=true bills
// against the room's current rate instead (relevant when rates changed
// between booking and stay).
func (h *BookingHandler) CheckOutBooking(c echo.Context) error {
	var body struct {
		RoomCondition  string   `json:"room_condition"`
		CheckOutTime   string   `json:"check_out_time"`
		Damages        []string `json:"damages"`
		UseCurrentRate bool     `json:"use_current_rate"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	in := booking.CheckOutInput{
		RoomCondition: model.RoomCondition(body.RoomCondition),
		Damages:       body.Damages,
	}
	if body.CheckOutTime != "" {
		t, err := time.Parse(time.RFC3339, body.CheckOutTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out_time format, want RFC3339"})
		}
		in.ActualCheckOut = t
	}
	return h.applyTransition(c, func(b *model.Booking) error {
		room, err := h.Rooms.GetByID(c.Request().Context(), b.RoomID)
		if err != nil {
			return err
		}
		rate := pricing.RateFromRoom(*room)
		if !body.UseCurrentRate {
			rate.BasePrice = b.RoomPriceAtBooking
		}
		return booking.CheckOut(b, in, rate, h.now())
	})
}

// SetPaymentStatus handles PATCH /v1/bookings/:id/payment.  Payment is
// an independent axis and may be toggled freely between its known
// values; no lifecycle transition is involved and no status event fires.
func (h *BookingHandler) SetPaymentStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return domainError(c, err)
	}
	if err := booking.SetPaymentStatus(b, model.PaymentStatus(body.Status)); err != nil {
		return domainError(c, err)
	}
	if err := h.Bookings.Save(ctx, b); err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// DeleteBooking handles DELETE /v1/bookings/:id.  Deletion is permanent
// and only allowed from the soft-terminal statuses; live bookings must
// be cancelled first.  A successful delete returns 204.
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return domainError(c, err)
	}
	if err := booking.EnsureDeletable(b); err != nil {
		return domainError(c, err)
	}
	if err := h.Bookings.Delete(ctx, id); err != nil {
		return domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
