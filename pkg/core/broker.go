package core

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Subscriber receives published events. It must not assume delivery order
// relative to other subscribers.
type Subscriber func(Event)

// Broker is a best-effort, at-most-once notification fan-out.
// Each dispatch isolates subscriber panics so one failing subscriber
// cannot block delivery to the others.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]Subscriber
	logger *slog.Logger
}

// NewBroker creates an empty broker. A nil logger silences panic reports.
func NewBroker(logger *slog.Logger) *Broker {
	return &Broker{
		subs:   make(map[string]Subscriber),
		logger: logger,
	}
}

// Subscribe registers fn and returns a cancel function that removes it.
// Cancel is idempotent.
func (b *Broker) Subscribe(fn Subscriber) func() {
	id := uuid.NewString()

	b.mu.Lock()
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Len returns the current subscriber count.
func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Publish delivers e to every current subscriber, synchronously and in
// unspecified order. Delivery is fire-and-forget: there is no retry and
// no acknowledgement.
func (b *Broker) Publish(e Event) {
	b.mu.RLock()
	targets := make([]Subscriber, 0, len(b.subs))
	for _, fn := range b.subs {
		targets = append(targets, fn)
	}
	b.mu.RUnlock()

	for _, fn := range targets {
		b.dispatch(fn, e)
	}
}

func (b *Broker) dispatch(fn Subscriber, e Event) {
	defer func() {
		if r := recover(); r != nil {
			if b.logger != nil {
				b.logger.Error("subscriber panicked", "event", e.Type, "panic", r)
			}
		}
	}()
	fn(e)
}
