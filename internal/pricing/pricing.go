// Package pricing computes the price of a stay.  It is pure: given the
// stay interval and a rate table it always produces the same amount, with
// no side effects and no clock access.  Overnight stays are billed per
// night; same-day stays (check-in and check-out on the same calendar date)
// are billed per hour with a one-hour minimum.
package pricing

import (
	"time"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

// RateTable carries the rates the engine needs for one room: the nightly
// base price and the hourly pair for same-day stays.  Build one with
// RateFromRoom to get the documented defaults applied.
type RateTable struct {
	BasePrice      int64 // price per night
	FirstHour      int64 // price for the first hour of a same-day stay
	AdditionalHour int64 // price for every hour after the first
}

// RateFromRoom builds a RateTable from a room, substituting the default
// hourly rates when the room has none configured.  BasePrice is taken
// as-is; a zero nightly rate is a data problem upstream, not something
// the engine papers over.
func RateFromRoom(room model.Room) RateTable {
	rt := RateTable{
		BasePrice:      room.BasePrice,
		FirstHour:      room.HourlyPrice.FirstHour,
		AdditionalHour: room.HourlyPrice.AdditionalHour,
	}
	if rt.FirstHour <= 0 {
		rt.FirstHour = model.DefaultFirstHourPrice
	}
	if rt.AdditionalHour <= 0 {
		rt.AdditionalHour = model.DefaultAdditionalHourPrice
	}
	return rt
}

// ComputeTotalAmount returns the price of the stay described by the given
// dates and wall-clock times.
//
// Nights are counted as ceil((checkOutDate - checkInDate) / 24h), never
// negative.  When the stay spans at least one night the amount is simply
// BasePrice * nights and the times play no role.  When the stay is
// same-day (zero nights) the times are combined with the dates and the
// stay is billed hourly: FirstHour for the first hour, AdditionalHour for
// each further started hour.  Any same-day stay is charged at least one
// FirstHour, however short the interval.
//
// checkInTime and checkOutTime are "HH:MM" strings; values that fail to
// parse fall back to the booking defaults ("13:00" / "12:00").
func ComputeTotalAmount(checkInDate, checkOutDate time.Time, checkInTime, checkOutTime string, rate RateTable) int64 {
	nights := Nights(checkInDate, checkOutDate)
	if nights > 0 {
		return rate.BasePrice * int64(nights)
	}

	start := CombineDateTime(checkInDate, checkInTime, model.DefaultCheckInTime)
	end := CombineDateTime(checkOutDate, checkOutTime, model.DefaultCheckOutTime)

	hours := int64(1)
	if diff := end.Sub(start); diff > 0 {
		hours = int64(diff / time.Hour)
		if diff%time.Hour != 0 {
			hours++
		}
		if hours < 1 {
			hours = 1
		}
	}
	if hours == 1 {
		return rate.FirstHour
	}
	return rate.FirstHour + rate.AdditionalHour*(hours-1)
}

// Nights returns the number of nights between the two calendar dates,
// rounding partial days up and clamping at zero.  Equal dates mean a
// same-day stay.
func Nights(checkInDate, checkOutDate time.Time) int {
	diff := truncateToDay(checkOutDate).Sub(truncateToDay(checkInDate))
	if diff <= 0 {
		return 0
	}
	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// CombineDateTime merges a calendar date with an "HH:MM" wall-clock string
// into a single UTC instant.  When the string does not parse, fallback is
// tried, and midnight is the last resort.
func CombineDateTime(date time.Time, clock, fallback string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		t, err = time.Parse("15:04", fallback)
		if err != nil {
			t = time.Time{}
		}
	}
	d := truncateToDay(date)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
