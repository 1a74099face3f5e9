package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation-admin/internal/event"
	"github.com/iliyamo/hotel-reservation-admin/internal/model"
)

func Test_Bus_PublishReachesSubscribers(t *testing.T) {
	bus := event.NewBus()
	var got []event.BookingStatusChanged
	bus.Subscribe(event.TopicBookingStatusChanged, func(_ event.Topic, payload any) {
		ev, ok := payload.(event.BookingStatusChanged)
		require.True(t, ok)
		got = append(got, ev)
	})

	bus.Publish(event.TopicBookingStatusChanged, event.BookingStatusChanged{
		BookingID: 1,
		NewStatus: model.StatusConfirmed,
	})

	require.Len(t, got, 1)
	assert.Equal(t, model.StatusConfirmed, got[0].NewStatus)
}

func Test_Bus_TopicsAreIsolated(t *testing.T) {
	bus := event.NewBus()
	created := 0
	changed := 0
	bus.Subscribe(event.TopicBookingCreated, func(event.Topic, any) { created++ })
	bus.Subscribe(event.TopicBookingStatusChanged, func(event.Topic, any) { changed++ })

	bus.Publish(event.TopicBookingCreated, event.BookingCreated{BookingID: 1})

	assert.Equal(t, 1, created)
	assert.Equal(t, 0, changed)
}

func Test_Bus_UnsubscribeIsDeterministicAndIdempotent(t *testing.T) {
	bus := event.NewBus()
	calls := 0
	sub := bus.Subscribe(event.TopicBookingCreated, func(event.Topic, any) { calls++ })

	bus.Publish(event.TopicBookingCreated, event.BookingCreated{BookingID: 1})
	assert.Equal(t, 1, calls)

	sub.Unsubscribe()
	sub.Unsubscribe() // second call is a no-op
	bus.Publish(event.TopicBookingCreated, event.BookingCreated{BookingID: 2})
	assert.Equal(t, 1, calls)
}

func Test_Bus_PublishWithNoSubscribersIsFine(t *testing.T) {
	bus := event.NewBus()
	assert.NotPanics(t, func() {
		bus.Publish(event.TopicBookingCreated, event.BookingCreated{BookingID: 1})
	})
}
