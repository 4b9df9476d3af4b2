package events_test

import (
	"testing"
	"time"

	"larkspur/config"
	"larkspur/infras/kafka"
	kafkaMocks "larkspur/infras/kafka/mocks"
	otelMocks "larkspur/infras/otel/mocks"
	"larkspur/internal/domains/crm/model"
	"larkspur/internal/events"
	"larkspur/shared/pubsub"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Enable = enable
	cfg.Kafka.BookingTopic = "larkspur.bookings"

	return cfg
}

func TestForwarderSendsBookingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := kafkaMocks.NewMockClient(ctrl)
	bus := pubsub.New()

	forwarder := events.NewForwarder(testConfig(true), bus, client, otelMocks.NewOtel())
	forwarder.Start()
	t.Cleanup(forwarder.Stop)

	bookings := []model.Booking{
		{ID: "b-1", GuestEmail: "one@example.com", RoomType: model.RoomTypeDeluxe, Status: model.BookingStatusConfirmed},
		{ID: "b-2", GuestEmail: "two@example.com", RoomType: model.RoomTypeSuite, Status: model.BookingStatusPending},
	}

	client.EXPECT().
		SendMessages(gomock.Any(), "larkspur.bookings", kafka.Message{Key: "b-1", Value: bookings[0]}, kafka.Message{Key: "b-2", Value: bookings[1]}).
		Return(nil).
		Times(1)

	bus.Publish(model.TopicBookings, bookings)
}

func TestForwarderDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := kafkaMocks.NewMockClient(ctrl)
	bus := pubsub.New()

	forwarder := events.NewForwarder(testConfig(false), bus, client, otelMocks.NewOtel())
	forwarder.Start()
	t.Cleanup(forwarder.Stop)

	bus.Publish(model.TopicBookings, []model.Booking{{ID: "b-1"}})
}

func TestForwarderIgnoresEmptyCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := kafkaMocks.NewMockClient(ctrl)
	bus := pubsub.New()

	forwarder := events.NewForwarder(testConfig(true), bus, client, otelMocks.NewOtel())
	forwarder.Start()
	t.Cleanup(forwarder.Stop)

	bus.Publish(model.TopicBookings, []model.Booking{})
	bus.Publish(model.TopicBookings, "not a collection")
}

func TestForwarderSurvivesBrokerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := kafkaMocks.NewMockClient(ctrl)
	bus := pubsub.New()

	forwarder := events.NewForwarder(testConfig(true), bus, client, otelMocks.NewOtel())
	forwarder.Start()

	client.EXPECT().
		SendMessages(gomock.Any(), "larkspur.bookings", gomock.Any()).
		Return(assert.AnError).
		Times(1)

	assert.NotPanics(t, func() {
		bus.Publish(model.TopicBookings, []model.Booking{{ID: "b-1", CreatedAt: time.Now()}})
	})

	forwarder.Stop()
	forwarder.Stop()
}
