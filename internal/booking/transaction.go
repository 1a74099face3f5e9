package booking

import (
	"strings"
	"time"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
	"github.com/iliyamo/hotel-reservation-admin/internal/pricing"
)

// CheckInInput carries what the desk records when the guest arrives.  A
// zero ActualCheckIn means "now"; operators may override it when entering
// a check-in after the fact.
type CheckInInput struct {
	RoomKey          string
	ActualCheckIn    time.Time
	AdditionalGuests []string
}

// CheckIn transitions a confirmed booking to checked_in and records the
// check-in info.  The transition is checked first, then the input; only
// when both pass is the booking mutated, so a failed check-in leaves the
// record exactly as it was.
func CheckIn(b *model.Booking, in CheckInInput, now time.Time) error {
	to, err := nextStatus(b.Status, ActionCheckIn)
	if err != nil {
		return err
	}
	roomKey := strings.TrimSpace(in.RoomKey)
	if roomKey == "" {
		ve := newValidationError()
		ve.add("room_key", "room key is required")
		return ve
	}
	actual := in.ActualCheckIn
	if actual.IsZero() {
		actual = now
	}
	b.CheckInInfo = &model.CheckInInfo{
		ActualCheckIn:    actual.UTC(),
		RoomKey:          roomKey,
		AdditionalGuests: in.AdditionalGuests,
	}
	b.Status = to
	return nil
}

// CheckOutInput carries what the desk records when the guest leaves.  A
// zero ActualCheckOut means "now".
type CheckOutInput struct {
	RoomCondition  model.RoomCondition
	ActualCheckOut time.Time
	Damages        []string
}

// CheckOut transitions a checked-in booking to checked_out, records the
// check-out info and recomputes the total amount using the actual
// recorded times, making the check-out amount authoritative over the
// creation-time estimate.  For overnight stays the recompute changes
// nothing (nights are counted from the calendar dates); for same-day
// stays the hourly bill now reflects the real interval.
//
// The rate table is an explicit parameter: the caller decides whether to
// bill against the rate snapshotted at booking time or the room's current
// rate.  Like CheckIn, the operation either fully applies or leaves the
// booking untouched.
func CheckOut(b *model.Booking, in CheckOutInput, rate pricing.RateTable, now time.Time) error {
	to, err := nextStatus(b.Status, ActionCheckOut)
	if err != nil {
		return err
	}
	if !model.KnownRoomCondition(in.RoomCondition) {
		ve := newValidationError()
		ve.add("room_condition", "must be one of good, damaged, needs_cleaning, needs_maintenance")
		return ve
	}
	actual := in.ActualCheckOut
	if actual.IsZero() {
		actual = now
	}
	actual = actual.UTC()

	// Bill against what actually happened: the recorded arrival time and
	// the departure time captured right now.
	actualInTime := b.CheckInTime
	if b.CheckInInfo != nil {
		actualInTime = b.CheckInInfo.ActualCheckIn.UTC().Format("15:04")
	}
	b.TotalAmount = pricing.ComputeTotalAmount(b.CheckInDate, b.CheckOutDate, actualInTime, actual.Format("15:04"), rate)

	b.CheckOutInfo = &model.CheckOutInfo{
		ActualCheckOut: actual,
		RoomCondition:  in.RoomCondition,
		Damages:        in.Damages,
	}
	b.Status = to
	return nil
}
