// Package queue_publisher forwards domain events from the in-process bus
// to RabbitMQ. Errors are logged and returned to allow callers to ignore
// failures without interrupting the main request flow: a broker outage
// must never fail the booking mutation that triggered the event.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/hotel-reservation-admin/internal/event"
	q "github.com/iliyamo/hotel-reservation-admin/internal/queue"
)

// publish sends one event payload to the named queue. The function
// attempts to be robust and to never panic; any error is logged and
// returned so the caller can choose to ignore it. Messages are marked as
// persistent and the queue is declared durable (idempotent).
func publish(ctx context.Context, queueName string, ev q.BookingStatusEvent) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}

// PublishBookingCreated publishes to the booking.created queue.
func PublishBookingCreated(ctx context.Context, ev q.BookingStatusEvent) error {
	return publish(ctx, q.BookingCreatedQueue, ev)
}

// PublishBookingStatusChanged publishes to the booking.statusChanged queue.
func PublishBookingStatusChanged(ctx context.Context, ev q.BookingStatusEvent) error {
	return publish(ctx, q.BookingStatusChangedQueue, ev)
}

// AttachToBus subscribes the broker publisher to both booking topics on
// the in-process bus and returns the subscription handles. Forwarding
// happens on a fresh goroutine per event so the publishing request never
// waits on the broker; failures are logged inside publish and dropped,
// matching the best-effort delivery contract.
func AttachToBus(bus *event.Bus) []*event.Subscription {
	created := bus.Subscribe(event.TopicBookingCreated, func(_ event.Topic, payload any) {
		ev, ok := payload.(event.BookingCreated)
		if !ok {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = PublishBookingCreated(ctx, q.BookingStatusEvent{
				BookingID:     ev.BookingID,
				BookingNumber: ev.BookingNumber,
				OccurredAt:    time.Now().UTC().Format(time.RFC3339),
			})
		}()
	})
	changed := bus.Subscribe(event.TopicBookingStatusChanged, func(_ event.Topic, payload any) {
		ev, ok := payload.(event.BookingStatusChanged)
		if !ok {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = PublishBookingStatusChanged(ctx, q.BookingStatusEvent{
				BookingID:     ev.BookingID,
				BookingNumber: ev.BookingNumber,
				RoomID:        ev.RoomID,
				NewStatus:     string(ev.NewStatus),
				OccurredAt:    time.Now().UTC().Format(time.RFC3339),
			})
		}()
	})
	return []*event.Subscription{created, changed}
}
