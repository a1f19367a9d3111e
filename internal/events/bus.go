package events

import (
	"sync"

	"walletgg/internal/domain"
)

// Handler reacts to one event.
type Handler func(domain.Event)

type subscription struct {
	id      uint64
	kind    domain.EventKind // empty matches every kind
	handler Handler
}

// Bus delivers events synchronously, in subscription order, on the
// publisher's goroutine. Publish returns after every handler has run.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

// NewBus returns an empty bus.
func NewBus() *Bus { return &Bus{} }

// Subscribe registers h for events of kind k and returns a function that
// removes the subscription.
func (b *Bus) Subscribe(k domain.EventKind, h Handler) (unsubscribe func()) {
	return b.add(k, h)
}

// SubscribeAll registers h for every event.
func (b *Bus) SubscribeAll(h Handler) (unsubscribe func()) {
	return b.add("", h)
}

func (b *Bus) add(k domain.EventKind, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, kind: k, handler: h})
	return func() { b.remove(id) }
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish runs every matching handler. Handlers may subscribe or publish
// themselves; they see the subscriber list as it was when Publish began.
func (b *Bus) Publish(e domain.Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		if s.kind == "" || s.kind == e.Kind {
			s.handler(e)
		}
	}
}

var _ domain.EventPublisher = (*Bus)(nil)
