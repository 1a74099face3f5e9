package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation-admin/internal/booking"
	"github.com/iliyamo/hotel-reservation-admin/internal/model"
	"github.com/iliyamo/hotel-reservation-admin/internal/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testRoom = model.Room{
	ID:         7,
	RoomNumber: "101",
	RoomType:   "standard",
	BasePrice:  500000,
	HourlyPrice: model.HourlyPrice{
		FirstHour:      100000,
		AdditionalHour: 20000,
	},
	MaxOccupancy: 3,
	Status:       "available",
}

func newTestBooking(t *testing.T, status model.BookingStatus) *model.Booking {
	t.Helper()
	b, err := booking.New(booking.CreateInput{
		CustomerID:   1,
		RoomID:       testRoom.ID,
		CheckInDate:  date(2024, 5, 1),
		CheckOutDate: date(2024, 5, 3),
		Guests:       model.Guests{Adults: 2},
	}, testRoom, time.Date(2024, 4, 20, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b.ID = 42
	b.Status = status
	if status == model.StatusCheckedIn || status == model.StatusCheckedOut {
		b.CheckInInfo = &model.CheckInInfo{
			ActualCheckIn: time.Date(2024, 5, 1, 13, 10, 0, 0, time.UTC),
			RoomKey:       "A1",
		}
	}
	return b
}

func Test_New_DefaultsAndPricing(t *testing.T) {
	now := time.Date(2024, 4, 20, 9, 0, 0, 0, time.UTC)
	b, err := booking.New(booking.CreateInput{
		CustomerID:   1,
		RoomID:       testRoom.ID,
		CheckInDate:  date(2024, 5, 1),
		CheckOutDate: date(2024, 5, 3),
		Guests:       model.Guests{Adults: 2, Children: 1},
	}, testRoom, now)
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, b.Status)
	assert.Equal(t, model.PaymentPending, b.Payment.Status)
	assert.Equal(t, model.DefaultCheckInTime, b.CheckInTime)
	assert.Equal(t, model.DefaultCheckOutTime, b.CheckOutTime)
	assert.Equal(t, int64(1000000), b.TotalAmount)
	assert.Equal(t, int64(500000), b.RoomPriceAtBooking)
	assert.Equal(t, now, b.CreatedAt)
	assert.Regexp(t, `^BK-20240420-[0-9A-F]{8}$`, b.BookingNumber)
}

func Test_New_ValidationFailures(t *testing.T) {
	_, err := booking.New(booking.CreateInput{
		CheckInDate:  date(2024, 5, 3),
		CheckOutDate: date(2024, 5, 1),
		Guests:       model.Guests{Adults: 0, Children: -1},
	}, testRoom, time.Now())
	ve := booking.IsValidationError(err)
	require.NotNil(t, ve)

	fields := ve.Fields()
	assert.Contains(t, fields, "customer_id")
	assert.Contains(t, fields, "room_id")
	assert.Contains(t, fields, "check_out_date")
	assert.Contains(t, fields, "guests.adults")
	assert.Contains(t, fields, "guests.children")
}

func Test_Transitions(t *testing.T) {
	t.Run("confirm_moves_pending_to_confirmed", func(t *testing.T) {
		b := newTestBooking(t, model.StatusPending)
		require.NoError(t, booking.Confirm(b))
		assert.Equal(t, model.StatusConfirmed, b.Status)
	})

	t.Run("confirm_rejected_on_confirmed", func(t *testing.T) {
		b := newTestBooking(t, model.StatusConfirmed)
		ite := booking.IsInvalidTransition(booking.Confirm(b))
		require.NotNil(t, ite)
		assert.Equal(t, model.StatusConfirmed, ite.From)
		assert.Equal(t, booking.ActionConfirm, ite.Action)
	})

	t.Run("cancel_allowed_from_pending_and_confirmed", func(t *testing.T) {
		for _, status := range []model.BookingStatus{model.StatusPending, model.StatusConfirmed} {
			b := newTestBooking(t, status)
			require.NoError(t, booking.Cancel(b))
			assert.Equal(t, model.StatusCancelled, b.Status)
		}
	})

	t.Run("cancel_rejected_on_checked_in", func(t *testing.T) {
		b := newTestBooking(t, model.StatusCheckedIn)
		require.NotNil(t, booking.IsInvalidTransition(booking.Cancel(b)))
		assert.Equal(t, model.StatusCheckedIn, b.Status)
	})

	t.Run("check_in_from_pending_rejected", func(t *testing.T) {
		b := newTestBooking(t, model.StatusPending)
		err := booking.CheckIn(b, booking.CheckInInput{RoomKey: "A1"}, time.Now())
		ite := booking.IsInvalidTransition(err)
		require.NotNil(t, ite)
		assert.Equal(t, model.StatusPending, ite.From)
		assert.Equal(t, booking.ActionCheckIn, ite.Action)
		assert.Equal(t, model.StatusPending, b.Status)
		assert.Nil(t, b.CheckInInfo)
	})
}

func Test_CheckIn(t *testing.T) {
	now := time.Date(2024, 5, 1, 13, 10, 0, 0, time.UTC)

	t.Run("records_info_and_transitions", func(t *testing.T) {
		b := newTestBooking(t, model.StatusConfirmed)
		err := booking.CheckIn(b, booking.CheckInInput{
			RoomKey:          "  A1  ",
			AdditionalGuests: []string{"Jamie"},
		}, now)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, b.Status)
		require.NotNil(t, b.CheckInInfo)
		assert.Equal(t, "A1", b.CheckInInfo.RoomKey)
		assert.Equal(t, now, b.CheckInInfo.ActualCheckIn)
		assert.Equal(t, []string{"Jamie"}, b.CheckInInfo.AdditionalGuests)
	})

	t.Run("operator_can_override_actual_time", func(t *testing.T) {
		b := newTestBooking(t, model.StatusConfirmed)
		override := time.Date(2024, 5, 1, 11, 30, 0, 0, time.UTC)
		require.NoError(t, booking.CheckIn(b, booking.CheckInInput{RoomKey: "A1", ActualCheckIn: override}, now))
		assert.Equal(t, override, b.CheckInInfo.ActualCheckIn)
	})

	t.Run("blank_room_key_rejected_without_mutation", func(t *testing.T) {
		b := newTestBooking(t, model.StatusConfirmed)
		err := booking.CheckIn(b, booking.CheckInInput{RoomKey: "   "}, now)
		require.NotNil(t, booking.IsValidationError(err))
		assert.Equal(t, model.StatusConfirmed, b.Status)
		assert.Nil(t, b.CheckInInfo)
	})
}

func Test_CheckOut(t *testing.T) {
	rate := pricing.RateFromRoom(testRoom)
	now := time.Date(2024, 5, 3, 11, 45, 0, 0, time.UTC)

	t.Run("records_info_and_keeps_nightly_total", func(t *testing.T) {
		b := newTestBooking(t, model.StatusCheckedIn)
		before := b.TotalAmount
		err := booking.CheckOut(b, booking.CheckOutInput{RoomCondition: model.ConditionGood}, rate, now)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCheckedOut, b.Status)
		require.NotNil(t, b.CheckOutInfo)
		assert.Equal(t, model.ConditionGood, b.CheckOutInfo.RoomCondition)
		assert.Equal(t, now, b.CheckOutInfo.ActualCheckOut)
		// nights are counted from the calendar dates, so actual times do
		// not move the price of an overnight stay
		assert.Equal(t, before, b.TotalAmount)
	})

	t.Run("same_day_total_rebilled_from_actual_times", func(t *testing.T) {
		b := newTestBooking(t, model.StatusCheckedIn)
		b.CheckOutDate = b.CheckInDate
		b.CheckInInfo.ActualCheckIn = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		leave := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
		err := booking.CheckOut(b, booking.CheckOutInput{
			RoomCondition:  model.ConditionGood,
			ActualCheckOut: leave,
		}, rate, now)
		require.NoError(t, err)
		// 3 actual hours: first hour plus two additional
		assert.Equal(t, int64(140000), b.TotalAmount)
	})

	t.Run("damages_are_recorded", func(t *testing.T) {
		b := newTestBooking(t, model.StatusCheckedIn)
		err := booking.CheckOut(b, booking.CheckOutInput{
			RoomCondition: model.ConditionDamaged,
			Damages:       []string{"broken lamp"},
		}, rate, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"broken lamp"}, b.CheckOutInfo.Damages)
	})

	t.Run("unknown_condition_rejected_without_mutation", func(t *testing.T) {
		b := newTestBooking(t, model.StatusCheckedIn)
		before := *b
		err := booking.CheckOut(b, booking.CheckOutInput{RoomCondition: "spotless"}, rate, now)
		require.NotNil(t, booking.IsValidationError(err))
		assert.Equal(t, before, *b)
	})

	t.Run("rejected_from_confirmed", func(t *testing.T) {
		b := newTestBooking(t, model.StatusConfirmed)
		err := booking.CheckOut(b, booking.CheckOutInput{RoomCondition: model.ConditionGood}, rate, now)
		require.NotNil(t, booking.IsInvalidTransition(err))
		assert.Equal(t, model.StatusConfirmed, b.Status)
	})
}

func Test_EnsureDeletable(t *testing.T) {
	for _, status := range []model.BookingStatus{model.StatusCancelled, model.StatusCheckedOut} {
		b := newTestBooking(t, status)
		assert.NoError(t, booking.EnsureDeletable(b))
	}
	for _, status := range []model.BookingStatus{model.StatusPending, model.StatusConfirmed, model.StatusCheckedIn} {
		b := newTestBooking(t, status)
		ite := booking.IsInvalidTransition(booking.EnsureDeletable(b))
		require.NotNil(t, ite)
		assert.Equal(t, booking.ActionDelete, ite.Action)
	}
}

func Test_SetPaymentStatus_RoundTrip(t *testing.T) {
	b := newTestBooking(t, model.StatusPending)
	require.NoError(t, booking.SetPaymentStatus(b, model.PaymentPaid))
	assert.Equal(t, model.PaymentPaid, b.Payment.Status)
	require.NoError(t, booking.SetPaymentStatus(b, model.PaymentPending))
	assert.Equal(t, model.PaymentPending, b.Payment.Status)

	err := booking.SetPaymentStatus(b, "sponsored")
	require.NotNil(t, booking.IsValidationError(err))
	assert.Equal(t, model.PaymentPending, b.Payment.Status)
}

func Test_ApplyEdit(t *testing.T) {
	t.Run("date_change_reprices", func(t *testing.T) {
		b := newTestBooking(t, model.StatusPending)
		newOut := date(2024, 5, 4)
		require.NoError(t, booking.ApplyEdit(b, booking.EditInput{CheckOutDate: &newOut}, testRoom))
		assert.Equal(t, int64(1500000), b.TotalAmount)
	})

	t.Run("room_change_reprices_and_resnapshots", func(t *testing.T) {
		b := newTestBooking(t, model.StatusPending)
		cheaper := testRoom
		cheaper.ID = 8
		cheaper.BasePrice = 300000
		newRoom := cheaper.ID
		require.NoError(t, booking.ApplyEdit(b, booking.EditInput{RoomID: &newRoom}, cheaper))
		assert.Equal(t, int64(600000), b.TotalAmount)
		assert.Equal(t, int64(300000), b.RoomPriceAtBooking)
	})

	t.Run("notes_change_keeps_price_and_number", func(t *testing.T) {
		b := newTestBooking(t, model.StatusPending)
		number := b.BookingNumber
		total := b.TotalAmount
		notes := "late arrival"
		require.NoError(t, booking.ApplyEdit(b, booking.EditInput{Notes: &notes}, testRoom))
		assert.Equal(t, number, b.BookingNumber)
		assert.Equal(t, total, b.TotalAmount)
		assert.Equal(t, "late arrival", b.Notes)
	})

	t.Run("inverted_dates_rejected_without_mutation", func(t *testing.T) {
		b := newTestBooking(t, model.StatusPending)
		before := *b
		bad := date(2024, 4, 28)
		err := booking.ApplyEdit(b, booking.EditInput{CheckOutDate: &bad}, testRoom)
		require.NotNil(t, booking.IsValidationError(err))
		assert.Equal(t, before, *b)
	})
}

// Full lifecycle walk: create, confirm, check in, check out, delete.
func Test_Lifecycle_EndToEnd(t *testing.T) {
	now := time.Date(2024, 4, 20, 9, 0, 0, 0, time.UTC)
	b, err := booking.New(booking.CreateInput{
		CustomerID:   1,
		RoomID:       testRoom.ID,
		CheckInDate:  date(2024, 5, 1),
		CheckOutDate: date(2024, 5, 3),
		Guests:       model.Guests{Adults: 2},
	}, testRoom, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), b.TotalAmount)
	assert.Equal(t, model.StatusPending, b.Status)

	require.NoError(t, booking.Confirm(b))
	assert.Equal(t, model.StatusConfirmed, b.Status)

	arrive := time.Date(2024, 5, 1, 13, 5, 0, 0, time.UTC)
	require.NoError(t, booking.CheckIn(b, booking.CheckInInput{RoomKey: "A1"}, arrive))
	assert.Equal(t, model.StatusCheckedIn, b.Status)
	assert.Equal(t, "A1", b.CheckInInfo.RoomKey)

	leave := time.Date(2024, 5, 3, 11, 40, 0, 0, time.UTC)
	rate := pricing.RateFromRoom(testRoom)
	require.NoError(t, booking.CheckOut(b, booking.CheckOutInput{RoomCondition: model.ConditionGood}, rate, leave))
	assert.Equal(t, model.StatusCheckedOut, b.Status)
	assert.Equal(t, int64(1000000), b.TotalAmount, "overnight total must survive the actual-time recompute")

	assert.NoError(t, booking.EnsureDeletable(b))
}
