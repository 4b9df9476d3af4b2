package pubsub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"larkspur/shared/pubsub"
)

func TestBus_PublishInRegistrationOrder(t *testing.T) {
	bus := pubsub.New()

	var order []int

	bus.Subscribe("guests", func(any) { order = append(order, 1) })
	bus.Subscribe("guests", func(any) { order = append(order, 2) })
	bus.Subscribe("guests", func(any) { order = append(order, 3) })

	bus.Publish("guests", nil)

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestBus_PublishDeliversPayload(t *testing.T) {
	bus := pubsub.New()

	var received any

	bus.Subscribe("bookings", func(payload any) { received = payload })

	bus.Publish("bookings", []string{"a", "b"})

	assert.Equal(t, []string{"a", "b"}, received)
}

func TestBus_PublishToOtherTopicNotDelivered(t *testing.T) {
	bus := pubsub.New()

	calls := 0

	bus.Subscribe("guests", func(any) { calls++ })

	bus.Publish("bookings", nil)

	assert.Zero(t, calls)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := pubsub.New()

	calls := 0
	unsubscribe := bus.Subscribe("guests", func(any) { calls++ })

	bus.Publish("guests", nil)
	unsubscribe()
	bus.Publish("guests", nil)
	bus.Publish("guests", nil)

	assert.Equal(t, 1, calls)
}

func TestBus_UnsubscribeRemovesOnlyThatCallback(t *testing.T) {
	bus := pubsub.New()

	first, second := 0, 0

	unsubscribe := bus.Subscribe("guests", func(any) { first++ })
	bus.Subscribe("guests", func(any) { second++ })

	unsubscribe()
	bus.Publish("guests", nil)

	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestBus_UnsubscribeTwiceIsNoop(t *testing.T) {
	bus := pubsub.New()

	calls := 0

	unsubscribe := bus.Subscribe("guests", func(any) { calls++ })
	bus.Subscribe("guests", func(any) { calls++ })

	unsubscribe()
	unsubscribe()

	bus.Publish("guests", nil)

	assert.Equal(t, 1, calls)
}

func TestBus_PanickingSubscriberDoesNotBlockOthers(t *testing.T) {
	bus := pubsub.New()

	delivered := false

	bus.Subscribe("bookings", func(any) { panic("boom") })
	bus.Subscribe("bookings", func(any) { delivered = true })

	assert.NotPanics(t, func() {
		bus.Publish("bookings", nil)
	})
	assert.True(t, delivered)
}
