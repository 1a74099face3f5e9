// Package event provides the in-process publish/subscribe bus the
// reservation core emits its notifications on.  Topics are typed
// constants, subscribers get explicit handles with deterministic
// unsubscribe, and delivery is best-effort: a slow or failing subscriber
// never blocks or fails the mutation that triggered the event.
// Downstream views (room availability, activity log) consume these events
// and must tolerate eventual consistency.
package event

import (
	"sync"

	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

// Topic names an event stream on the bus.
type Topic string

const (
	// TopicBookingCreated fires after a booking is persisted.
	TopicBookingCreated Topic = "booking.created"
	// TopicBookingStatusChanged fires after any lifecycle transition.
	TopicBookingStatusChanged Topic = "booking.statusChanged"
)

// BookingCreated is the payload for TopicBookingCreated.
type BookingCreated struct {
	BookingID     uint64 `json:"booking_id"`
	BookingNumber string `json:"booking_number"`
}

// BookingStatusChanged is the payload for TopicBookingStatusChanged.
type BookingStatusChanged struct {
	BookingID     uint64              `json:"booking_id"`
	BookingNumber string              `json:"booking_number"`
	NewStatus     model.BookingStatus `json:"new_status"`
	RoomID        uint64              `json:"room_id"`
}

// Handler receives every event published on the topics it subscribed to.
type Handler func(topic Topic, payload any)

// Bus is a small synchronous fan-out.  Handlers run on the publisher's
// goroutine; anything long-running (broker publishes, file writes) should
// hand off internally.  Safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Topic]map[uint64]Handler
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[uint64]Handler)}
}

// Subscription is the handle returned by Subscribe.  Unsubscribe is
// idempotent and takes effect before it returns: no delivery starts after
// Unsubscribe completes.
type Subscription struct {
	bus   *Bus
	topic Topic
	id    uint64
	once  sync.Once
}

// Unsubscribe removes the handler from its topic.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		if handlers, ok := s.bus.subs[s.topic]; ok {
			delete(handlers, s.id)
			if len(handlers) == 0 {
				delete(s.bus.subs, s.topic)
			}
		}
	})
}

// Subscribe registers the handler for a topic and returns its handle.
func (b *Bus) Subscribe(topic Topic, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]Handler)
	}
	b.subs[topic][b.nextID] = h
	return &Subscription{bus: b, topic: topic, id: b.nextID}
}

// Publish delivers the payload to every current subscriber of the topic.
// Handlers are invoked outside the bus lock, so a handler may subscribe
// or unsubscribe without deadlocking; such changes affect later publishes
// only.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()
	for _, h := range handlers {
		h(topic, payload)
	}
}
