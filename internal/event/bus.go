package event

import (
	"sync"
)

// Handler receives a published event.
type Handler func(Event)

// Bus delivers events to subscribers synchronously, in subscription
// order. Safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic][]subscription
	nextID   int
}

type subscription struct {
	id int
	fn Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Topic][]subscription),
	}
}

// Subscribe registers a handler for a topic and returns a function
// that removes the subscription.
func (b *Bus) Subscribe(topic Topic, fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[topic] = append(b.handlers[topic], subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[topic]
		for i, s := range subs {
			if s.id == id {
				b.handlers[topic] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to every subscriber of its topic.
// Handlers run in the caller's goroutine; a panic in one handler is
// recovered so the remaining handlers still run.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	subs := b.handlers[ev.Topic]
	b.mu.RUnlock()

	for _, s := range subs {
		deliver(s.fn, ev)
	}
}

func deliver(fn Handler, ev Event) {
	defer func() {
		_ = recover()
	}()
	fn(ev)
}

// SubscriberCount reports how many handlers are registered for a topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[topic])
}
