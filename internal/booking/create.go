package booking

import (
	"strings"
	"time"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
	"github.com/iliyamo/hotel-reservation-admin/internal/pricing"
)

// CreateInput carries everything needed to create a booking.  Optional
// wall-clock times default to the house check-in / check-out times when
// left empty.
type CreateInput struct {
	CustomerID    uint64
	RoomID        uint64
	CheckInDate   time.Time
	CheckOutDate  time.Time
	CheckInTime   string
	CheckOutTime  string
	Guests        model.Guests
	PaymentMethod string
	Notes         string
}

// New validates the input and builds a fresh booking in status pending.
// The booking number is assigned here, exactly once; the nightly rate is
// snapshotted from the room; and the total amount is computed by the
// pricing engine.  Either all validations pass and a complete booking is
// returned, or a ValidationError describes every problem found.
func New(in CreateInput, room model.Room, now time.Time) (*model.Booking, error) {
	ve := newValidationError()
	if in.CustomerID == 0 {
		ve.add("customer_id", "customer is required")
	}
	if in.RoomID == 0 {
		ve.add("room_id", "room is required")
	}
	if in.CheckInDate.IsZero() {
		ve.add("check_in_date", "check-in date is required")
	}
	if in.CheckOutDate.IsZero() {
		ve.add("check_out_date", "check-out date is required")
	}
	if !in.CheckInDate.IsZero() && !in.CheckOutDate.IsZero() && in.CheckOutDate.Before(in.CheckInDate) {
		ve.add("check_out_date", "check-out date must not be before check-in date")
	}
	if in.Guests.Adults < 1 {
		ve.add("guests.adults", "at least one adult is required")
	}
	if in.Guests.Children < 0 {
		ve.add("guests.children", "children must not be negative")
	}
	checkInTime := normalizeClock(in.CheckInTime, model.DefaultCheckInTime, ve, "check_in_time")
	checkOutTime := normalizeClock(in.CheckOutTime, model.DefaultCheckOutTime, ve, "check_out_time")
	if ve.count() > 0 {
		return nil, ve
	}

	rate := pricing.RateFromRoom(room)
	b := &model.Booking{
		BookingNumber:      NewBookingNumber(now),
		CustomerID:         in.CustomerID,
		RoomID:             in.RoomID,
		CheckInDate:        in.CheckInDate,
		CheckOutDate:       in.CheckOutDate,
		CheckInTime:        checkInTime,
		CheckOutTime:       checkOutTime,
		Guests:             in.Guests,
		RoomPriceAtBooking: room.BasePrice,
		TotalAmount:        pricing.ComputeTotalAmount(in.CheckInDate, in.CheckOutDate, checkInTime, checkOutTime, rate),
		Payment:            model.Payment{Method: in.PaymentMethod, Status: model.PaymentPending},
		Status:             model.StatusPending,
		Notes:              in.Notes,
		CreatedAt:          now.UTC(),
	}
	return b, nil
}

// EditInput carries the fields an operator may change after creation.
// Nil pointers mean "leave as is".  Status, booking number and the
// check-in/out info blocks are not editable through this path.
type EditInput struct {
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	CheckInTime  *string
	CheckOutTime *string
	RoomID       *uint64
	Guests       *model.Guests
	Notes        *string
}

// ApplyEdit mutates the booking with the provided changes and reprices it
// whenever the stay interval or the room changed.  room must be the
// booking's room after the edit (the caller resolves a new room when
// RoomID is set).  The booking number never changes.  On validation
// failure the booking is left untouched.
func ApplyEdit(b *model.Booking, in EditInput, room model.Room) error {
	next := *b
	repriced := false

	if in.RoomID != nil && *in.RoomID != b.RoomID {
		if *in.RoomID == 0 {
			ve := newValidationError()
			ve.add("room_id", "room is required")
			return ve
		}
		next.RoomID = *in.RoomID
		next.RoomPriceAtBooking = room.BasePrice
		repriced = true
	}
	if in.CheckInDate != nil {
		next.CheckInDate = *in.CheckInDate
		repriced = true
	}
	if in.CheckOutDate != nil {
		next.CheckOutDate = *in.CheckOutDate
		repriced = true
	}
	ve := newValidationError()
	if in.CheckInTime != nil {
		next.CheckInTime = normalizeClock(*in.CheckInTime, model.DefaultCheckInTime, ve, "check_in_time")
		repriced = true
	}
	if in.CheckOutTime != nil {
		next.CheckOutTime = normalizeClock(*in.CheckOutTime, model.DefaultCheckOutTime, ve, "check_out_time")
		repriced = true
	}
	if in.Guests != nil {
		if in.Guests.Adults < 1 {
			ve.add("guests.adults", "at least one adult is required")
		}
		if in.Guests.Children < 0 {
			ve.add("guests.children", "children must not be negative")
		}
		next.Guests = *in.Guests
	}
	if in.Notes != nil {
		next.Notes = *in.Notes
	}
	if next.CheckInDate.IsZero() || next.CheckOutDate.IsZero() {
		ve.add("check_in_date", "check-in and check-out dates are required")
	} else if next.CheckOutDate.Before(next.CheckInDate) {
		ve.add("check_out_date", "check-out date must not be before check-in date")
	}
	if ve.count() > 0 {
		return ve
	}

	if repriced {
		rate := pricing.RateFromRoom(room)
		next.TotalAmount = pricing.ComputeTotalAmount(next.CheckInDate, next.CheckOutDate, next.CheckInTime, next.CheckOutTime, rate)
	}
	*b = next
	return nil
}

// normalizeClock validates an "HH:MM" string, returning the fallback for
// empty input and recording a validation problem for garbage.
func normalizeClock(clock, fallback string, ve *ValidationError, field string) string {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return fallback
	}
	if _, err := time.Parse("15:04", clock); err != nil {
		ve.add(field, "must be a valid HH:MM time")
		return fallback
	}
	return clock
}
