// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingStatusEvent is published whenever a booking is created or moves
// through its lifecycle. It carries enough information for downstream
// consumers (room availability board, activity log, notifications) to
// react without querying the primary database. Delivery is best-effort
// and unordered relative to the originating mutation; consumers must
// tolerate eventual consistency and offer a manual refresh path.
type BookingStatusEvent struct {
	BookingID     uint64 `json:"booking_id"`
	BookingNumber string `json:"booking_number"`
	RoomID        uint64 `json:"room_id"`
	NewStatus     string `json:"new_status"`
	OccurredAt    string `json:"occurred_at"`
}

// Queue names used on the broker. Both queues are declared durable so
// messages survive broker restarts.
const (
	BookingCreatedQueue       = "booking.created"
	BookingStatusChangedQueue = "booking.statusChanged"
)
