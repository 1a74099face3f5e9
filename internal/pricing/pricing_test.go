package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
	"github.com/iliyamo/hotel-reservation-admin/internal/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testRate = pricing.RateTable{
	BasePrice:      500000,
	FirstHour:      100000,
	AdditionalHour: 20000,
}

func Test_ComputeTotalAmount(t *testing.T) {
	tests := []struct {
		name         string
		checkInDate  time.Time
		checkOutDate time.Time
		checkInTime  string
		checkOutTime string
		want         int64
	}{
		{
			name:         "two_night_stay_bills_base_price_per_night",
			checkInDate:  date(2024, 5, 1),
			checkOutDate: date(2024, 5, 3),
			checkInTime:  "13:00",
			checkOutTime: "12:00",
			want:         1000000,
		},
		{
			name:         "single_night_stay",
			checkInDate:  date(2024, 5, 1),
			checkOutDate: date(2024, 5, 2),
			checkInTime:  "13:00",
			checkOutTime: "12:00",
			want:         500000,
		},
		{
			name:         "same_day_one_hour_bills_first_hour_only",
			checkInDate:  date(2024, 5, 1),
			checkOutDate: date(2024, 5, 1),
			checkInTime:  "10:00",
			checkOutTime: "11:00",
			want:         100000,
		},
		{
			name:         "same_day_three_hours_adds_additional_hours",
			checkInDate:  date(2024, 5, 1),
			checkOutDate: date(2024, 5, 1),
			checkInTime:  "10:00",
			checkOutTime: "13:00",
			want:         140000,
		},
		{
			name:         "same_day_partial_hour_rounds_up",
			checkInDate:  date(2024, 5, 1),
			checkOutDate: date(2024, 5, 1),
			checkInTime:  "10:00",
			checkOutTime: "11:30",
			want:         120000,
		},
		{
			name:         "same_day_zero_length_still_charges_one_hour",
			checkInDate:  date(2024, 5, 1),
			checkOutDate: date(2024, 5, 1),
			checkInTime:  "10:00",
			checkOutTime: "10:00",
			want:         100000,
		},
		{
			name:         "same_day_inverted_times_still_charges_one_hour",
			checkInDate:  date(2024, 5, 1),
			checkOutDate: date(2024, 5, 1),
			checkInTime:  "14:00",
			checkOutTime: "10:00",
			want:         100000,
		},
		{
			name:         "nightly_stay_ignores_wall_clock_times",
			checkInDate:  date(2024, 5, 1),
			checkOutDate: date(2024, 5, 3),
			checkInTime:  "23:59",
			checkOutTime: "00:01",
			want:         1000000,
		},
		{
			name:         "unparseable_times_fall_back_to_defaults",
			checkInDate:  date(2024, 5, 1),
			checkOutDate: date(2024, 5, 1),
			checkInTime:  "not-a-time",
			checkOutTime: "also-bad",
			// defaults 13:00 -> 12:00 are inverted, minimum one hour applies
			want: 100000,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.ComputeTotalAmount(tc.checkInDate, tc.checkOutDate, tc.checkInTime, tc.checkOutTime, testRate)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_Nights(t *testing.T) {
	assert.Equal(t, 0, pricing.Nights(date(2024, 5, 1), date(2024, 5, 1)))
	assert.Equal(t, 1, pricing.Nights(date(2024, 5, 1), date(2024, 5, 2)))
	assert.Equal(t, 2, pricing.Nights(date(2024, 5, 1), date(2024, 5, 3)))
	// inverted interval clamps at zero instead of going negative
	assert.Equal(t, 0, pricing.Nights(date(2024, 5, 3), date(2024, 5, 1)))
	// non-midnight timestamps are truncated to their calendar date first
	in := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)
	out := time.Date(2024, 5, 2, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, pricing.Nights(in, out))
}

func Test_RateFromRoom_AppliesHourlyDefaults(t *testing.T) {
	room := model.Room{BasePrice: 300000}
	rt := pricing.RateFromRoom(room)
	assert.Equal(t, int64(300000), rt.BasePrice)
	assert.Equal(t, int64(model.DefaultFirstHourPrice), rt.FirstHour)
	assert.Equal(t, int64(model.DefaultAdditionalHourPrice), rt.AdditionalHour)

	room.HourlyPrice = model.HourlyPrice{FirstHour: 80000, AdditionalHour: 15000}
	rt = pricing.RateFromRoom(room)
	assert.Equal(t, int64(80000), rt.FirstHour)
	assert.Equal(t, int64(15000), rt.AdditionalHour)
}

func Test_ComputeTotalAmount_IsDeterministic(t *testing.T) {
	first := pricing.ComputeTotalAmount(date(2024, 5, 1), date(2024, 5, 1), "09:15", "17:45", testRate)
	for i := 0; i < 5; i++ {
		again := pricing.ComputeTotalAmount(date(2024, 5, 1), date(2024, 5, 1), "09:15", "17:45", testRate)
		assert.Equal(t, first, again)
	}
}
