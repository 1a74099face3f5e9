// Package query implements the list-view engine: an ANDed filter over
// booking views, a stable sort, and the selection coordinator for bulk
// operations.  Everything here is pure and in-memory; filtering and
// sorting never mutate their input and always produce a fresh slice, so
// two identical calls over the same data yield identical views.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

// StatusAll is the wildcard accepted by Filter.Status.
const StatusAll = "all"

// DateBucket selects which slice of the calendar a booking's check-in
// date must fall into.
type DateBucket string

const (
	BucketAll       DateBucket = "all"
	BucketToday     DateBucket = "today"
	BucketThisWeek  DateBucket = "this_week"
	BucketThisMonth DateBucket = "this_month"
)

// ParseDateBucket maps a query-string value onto a DateBucket, defaulting
// to BucketAll for empty or unknown input.
func ParseDateBucket(s string) DateBucket {
	switch DateBucket(strings.ToLower(strings.TrimSpace(s))) {
	case BucketToday:
		return BucketToday
	case BucketThisWeek:
		return BucketThisWeek
	case BucketThisMonth:
		return BucketThisMonth
	}
	return BucketAll
}

// Filter is the ANDed predicate the list view applies.  An empty Search
// matches everything; Status StatusAll (or empty) matches every status;
// BucketAll matches every date.
type Filter struct {
	Search     string
	Status     string
	DateBucket DateBucket
}

// Apply returns the subset of rows matching every filter clause.  The
// date bucket is evaluated against each booking's check-in date relative
// to now; weeks start on Monday.  Input order is preserved and the input
// slice is never modified.
func (f Filter) Apply(rows []model.BookingView, now time.Time) []model.BookingView {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	status := strings.TrimSpace(f.Status)
	out := make([]model.BookingView, 0, len(rows))
	for _, row := range rows {
		if search != "" && !matchesSearch(row, search) {
			continue
		}
		if status != "" && status != StatusAll && string(row.Booking.Status) != status {
			continue
		}
		if !inBucket(row.Booking.CheckInDate, f.DateBucket, now) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func matchesSearch(row model.BookingView, search string) bool {
	for _, hay := range []string{
		row.Booking.BookingNumber,
		row.CustomerName,
		row.CustomerEmail,
		row.RoomNumber,
	} {
		if strings.Contains(strings.ToLower(hay), search) {
			return true
		}
	}
	return false
}

func inBucket(checkIn time.Time, bucket DateBucket, now time.Time) bool {
	d := dayOf(checkIn)
	today := dayOf(now)
	switch bucket {
	case BucketToday:
		return d.Equal(today)
	case BucketThisWeek:
		start := weekStart(today)
		return !d.Before(start) && d.Before(start.AddDate(0, 0, 7))
	case BucketThisMonth:
		return d.Year() == today.Year() && d.Month() == today.Month()
	}
	return true
}

// weekStart returns the Monday beginning the week containing day.
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SortKey names a column the list view can be ordered by.
type SortKey string

const (
	SortCheckIn     SortKey = "checkIn"
	SortCheckOut    SortKey = "checkOut"
	SortTotalAmount SortKey = "totalAmount"
	SortStatus      SortKey = "status"
	SortCustomer    SortKey = "customer"
	SortCreatedAt   SortKey = "createdAt"
)

// ParseSortKey maps a query-string value onto a SortKey, defaulting to
// SortCreatedAt for empty or unknown input.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case SortCheckIn:
		return SortCheckIn
	case SortCheckOut:
		return SortCheckOut
	case SortTotalAmount:
		return SortTotalAmount
	case SortStatus:
		return SortStatus
	case SortCustomer:
		return SortCustomer
	}
	return SortCreatedAt
}

// Sort returns a new slice ordered by key.  The sort is stable: rows
// comparing equal on the key keep their relative order from the input,
// which in turn never changes.
func Sort(rows []model.BookingView, key SortKey, descending bool) []model.BookingView {
	out := make([]model.BookingView, len(rows))
	copy(out, rows)
	less := lessFunc(key)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b model.BookingView) bool {
	switch key {
	case SortCheckIn:
		return func(a, b model.BookingView) bool { return a.Booking.CheckInDate.Before(b.Booking.CheckInDate) }
	case SortCheckOut:
		return func(a, b model.BookingView) bool { return a.Booking.CheckOutDate.Before(b.Booking.CheckOutDate) }
	case SortTotalAmount:
		return func(a, b model.BookingView) bool { return a.Booking.TotalAmount < b.Booking.TotalAmount }
	case SortStatus:
		return func(a, b model.BookingView) bool { return a.Booking.Status < b.Booking.Status }
	case SortCustomer:
		return func(a, b model.BookingView) bool {
			return strings.ToLower(a.CustomerName) < strings.ToLower(b.CustomerName)
		}
	default:
		return func(a, b model.BookingView) bool { return a.Booking.CreatedAt.Before(b.Booking.CreatedAt) }
	}
}
