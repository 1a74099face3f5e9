package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking.  Transitions
// between statuses are enforced by the booking package; no other code may
// assign Status directly.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// KnownStatus reports whether s is one of the defined booking statuses.
func KnownStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// PaymentStatus enumerates the payment states of a booking.  Payment is an
// independent axis from the booking lifecycle: a cancelled booking may still
// be marked refunded, a checked-in booking may still be pending payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// KnownPaymentStatus reports whether s is one of the defined payment statuses.
func KnownPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// RoomCondition enumerates the conditions an operator may record at
// check-out.  Anything outside this set is rejected before the booking is
// mutated.
type RoomCondition string

const (
	ConditionGood             RoomCondition = "good"
	ConditionDamaged          RoomCondition = "damaged"
	ConditionNeedsCleaning    RoomCondition = "needs_cleaning"
	ConditionNeedsMaintenance RoomCondition = "needs_maintenance"
)

// KnownRoomCondition reports whether c is one of the defined room conditions.
func KnownRoomCondition(c RoomCondition) bool {
	switch c {
	case ConditionGood, ConditionDamaged, ConditionNeedsCleaning, ConditionNeedsMaintenance:
		return true
	}
	return false
}

// Default wall-clock times applied when a booking is created without
// explicit check-in / check-out times.
const (
	DefaultCheckInTime  = "13:00"
	DefaultCheckOutTime = "12:00"
)

// Guests records the party size of a booking.  Adults must be at least 1;
// Children may be zero.
type Guests struct {
	Adults   int `json:"adults"`   // bookings.adults
	Children int `json:"children"` // bookings.children
}

// Payment records how a booking is paid and where that payment stands.
type Payment struct {
	Method string        `json:"method"` // bookings.payment_method (e.g. "cash", "card", "transfer")
	Status PaymentStatus `json:"status"` // bookings.payment_status
}

// CheckInInfo captures what was recorded when the guest actually arrived.
// It is nil on a booking that has not been checked in.
//
// Fields:
//  ActualCheckIn    – wall-clock moment the guest received the key.
//  RoomKey          – identifier of the physical key or card handed out.
//  AdditionalGuests – names of guests added at the desk, beyond the
//                     originally booked party.
type CheckInInfo struct {
	ActualCheckIn    time.Time `json:"actual_check_in"`
	RoomKey          string    `json:"room_key"`
	AdditionalGuests []string  `json:"additional_guests,omitempty"`
}

// CheckOutInfo captures what was recorded when the guest left.  It is nil
// on a booking that has not been checked out.
//
// Fields:
//  ActualCheckOut – wall-clock moment the room was handed back.
//  RoomCondition  – state of the room as assessed by the operator.
//  Damages        – free-form list of damages found, if any.
type CheckOutInfo struct {
	ActualCheckOut time.Time     `json:"actual_check_out"`
	RoomCondition  RoomCondition `json:"room_condition"`
	Damages        []string      `json:"damages,omitempty"`
}

// Booking is the central entity of the reservation core.  Dates are stored
// as date-only values at UTC midnight; the wall-clock times live separately
// in CheckInTime / CheckOutTime as "HH:MM" strings.  A stay whose check-in
// and check-out dates are equal is a same-day stay and is billed hourly.
//
// Fields:
//  ID                 – primary key identifier, immutable.
//  BookingNumber      – human-readable reference, assigned once at creation
//                       and never changed by later edits.
//  CustomerID         – customer who booked; resolved, not owned, here.
//  RoomID             – room being booked; resolved, not owned, here.
//  CheckInDate        – calendar date the stay begins.
//  CheckOutDate       – calendar date the stay ends (>= CheckInDate).
//  CheckInTime        – planned arrival time, "HH:MM", default "13:00".
//  CheckOutTime       – planned departure time, "HH:MM", default "12:00".
//  Guests             – party size.
//  RoomPriceAtBooking – nightly rate snapshot taken at creation time.
//  TotalAmount        – derived price; recomputed by the pricing engine,
//                       never hand-edited.
//  Payment            – payment method and status.
//  Status             – lifecycle state, changed only via the state machine.
//  CheckInInfo        – present once the booking is checked in.
//  CheckOutInfo       – present once the booking is checked out.
//  Notes              – free-form operator notes.
//  CreatedAt          – creation timestamp.
type Booking struct {
	ID                 uint64        `json:"id"`
	BookingNumber      string        `json:"booking_number"`
	CustomerID         uint64        `json:"customer_id"`
	RoomID             uint64        `json:"room_id"`
	CheckInDate        time.Time     `json:"check_in_date"`
	CheckOutDate       time.Time     `json:"check_out_date"`
	CheckInTime        string        `json:"check_in_time"`
	CheckOutTime       string        `json:"check_out_time"`
	Guests             Guests        `json:"guests"`
	RoomPriceAtBooking int64         `json:"room_price_at_booking"`
	TotalAmount        int64         `json:"total_amount"`
	Payment            Payment       `json:"payment"`
	Status             BookingStatus `json:"status"`
	CheckInInfo        *CheckInInfo  `json:"check_in_info,omitempty"`
	CheckOutInfo       *CheckOutInfo `json:"check_out_info,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

// BookingView is a booking joined with the customer and room fields the
// list screens search and sort on.  Views are produced by the repository's
// joined list query and consumed by the query engine; they are a read-only
// projection and never written back.
type BookingView struct {
	Booking       Booking `json:"booking"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	RoomNumber    string  `json:"room_number"`
}
