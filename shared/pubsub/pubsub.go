package pubsub

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Bus is a minimal in-process topic bus. Subscribers receive every payload
// published to their topic, in registration order, on the publisher's
// goroutine. A panicking subscriber never prevents delivery to the rest.
type Bus interface {
	Subscribe(topic string, callback func(payload any)) (unsubscribe func())
	Publish(topic string, payload any)
}

type subscription struct {
	id       uint64
	callback func(payload any)
}

type busImpl struct {
	mu     sync.Mutex
	nextID uint64
	topics map[string][]subscription
}

func New() Bus {
	return &busImpl{
		topics: map[string][]subscription{},
	}
}

// Subscribe registers the callback under the topic. The returned function
// removes exactly this registration; calling it more than once is a no-op.
func (b *busImpl) Subscribe(topic string, callback func(payload any)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID

	b.topics[topic] = append(b.topics[topic], subscription{id: id, callback: callback})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.topics[topic]
		for i, sub := range subs {
			if sub.id == id {
				b.topics[topic] = append(subs[:i:i], subs[i+1:]...)

				return
			}
		}
	}
}

// Publish synchronously invokes every callback registered for the topic.
func (b *busImpl) Publish(topic string, payload any) {
	b.mu.Lock()
	subs := make([]subscription, len(b.topics[topic]))
	copy(subs, b.topics[topic])
	b.mu.Unlock()

	for _, sub := range subs {
		deliver(topic, sub, payload)
	}
}

func deliver(topic string, sub subscription, payload any) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("topic", topic).Any("panic", r).Msg("subscriber panicked during delivery")
		}
	}()

	sub.callback(payload)
}
