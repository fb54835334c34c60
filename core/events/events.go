package events

import "sync"

// Topics broadcast by the engine. Observers (badge counters, dropdowns)
// subscribe instead of polling the store.
const (
	NotificationsChanged = "notifications:changed"
)

// Bus is a minimal fire-and-forget observer list. Handlers run synchronously
// on the publishing goroutine; there is no payload — subscribers re-read the
// store themselves.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(topic string)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(string))}
}

// Subscribe registers a handler for all topics and returns its cancel func.
func (b *Bus) Subscribe(fn func(topic string)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *Bus) Publish(topic string) {
	b.mu.Lock()
	handlers := make([]func(string), 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()
	for _, fn := range handlers {
		fn(topic)
	}
}
