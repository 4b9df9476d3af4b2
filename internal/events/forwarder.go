package events

import (
	"context"
	"sync"

	"larkspur/config"
	"larkspur/infras/kafka"
	"larkspur/infras/otel"
	"larkspur/internal/domains/crm/model"
	"larkspur/shared/constant"
	"larkspur/shared/pubsub"

	"github.com/rs/zerolog/log"
)

// Forwarder bridges the in-process booking topic onto Kafka so external
// consumers see the same collection snapshots the dashboard does. Delivery
// is best effort: a broker failure is logged and never blocks the mutation
// that triggered the publish.
type Forwarder struct {
	cfg   *config.Config
	bus   pubsub.Bus
	kafka kafka.Client
	otel  otel.Otel

	startOnce   sync.Once
	unsubscribe func()
}

func NewForwarder(cfg *config.Config, bus pubsub.Bus, kafkaClient kafka.Client, ot otel.Otel) *Forwarder {
	return &Forwarder{
		cfg:   cfg,
		bus:   bus,
		kafka: kafkaClient,
		otel:  ot,
	}
}

func (f *Forwarder) Start() {
	f.startOnce.Do(func() {
		if !f.cfg.Kafka.Enable {
			log.Info().Msg("Kafka forwarding disabled, booking events stay in-process")

			return
		}

		f.unsubscribe = f.bus.Subscribe(model.TopicBookings, f.forward)

		log.Info().Str("topic", f.cfg.Kafka.BookingTopic).Msg("Forwarding booking events to Kafka")
	})
}

func (f *Forwarder) Stop() {
	if f.unsubscribe != nil {
		f.unsubscribe()
	}
}

func (f *Forwarder) forward(payload any) {
	ctx, scope := f.otel.NewScope(context.Background(), constant.OtelEventScopeName, constant.OtelEventScopeName+".ForwardBookings")
	defer scope.End()

	bookings, ok := payload.([]model.Booking)
	if !ok {
		log.Error().Msg("unexpected payload type on bookings topic")

		return
	}

	messages := make([]kafka.Message, 0, len(bookings))
	for _, booking := range bookings {
		messages = append(messages, kafka.Message{
			Key:   booking.ID,
			Value: booking,
		})
	}

	if len(messages) == 0 {
		return
	}

	if err := f.kafka.SendMessages(ctx, f.cfg.Kafka.BookingTopic, messages...); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to forward booking events to Kafka")
	}
}
