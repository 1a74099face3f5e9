package model

import "time"

// Default hourly rates applied when a room has no explicit hourly pricing.
// Same-day stays are billed against these when HourlyPrice fields are zero.
const (
	DefaultFirstHourPrice      = 100000
	DefaultAdditionalHourPrice = 20000
)

// HourlyPrice is the rate pair used for same-day (hourly) stays.  A zero
// field means "not configured" and falls back to the package defaults when
// a rate table is built from the room.
type HourlyPrice struct {
	FirstHour      int64 `json:"first_hour"`      // rooms.hourly_first
	AdditionalHour int64 `json:"additional_hour"` // rooms.hourly_additional
}

// Room is consumed read-only by the reservation core.  Its availability
// status is owned by a separate collaborator and is never mutated here;
// the core only reads rates and descriptive fields.
//
// Fields:
//  ID           – primary key identifier.
//  RoomNumber   – human-visible room number, searched by list views.
//  RoomType     – category such as "standard" or "suite".
//  Floor        – floor the room is on.
//  BasePrice    – nightly rate.
//  HourlyPrice  – rates for same-day stays (defaults apply when zero).
//  MaxOccupancy – maximum number of guests.
//  Status       – availability state owned elsewhere (e.g. "available",
//                 "occupied", "maintenance").
//  CreatedAt    – creation timestamp.
type Room struct {
	ID           uint64      `json:"id"`
	RoomNumber   string      `json:"room_number"`
	RoomType     string      `json:"room_type"`
	Floor        int         `json:"floor"`
	BasePrice    int64       `json:"base_price"`
	HourlyPrice  HourlyPrice `json:"hourly_price"`
	MaxOccupancy int         `json:"max_occupancy"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}
