package core_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/daybook/pkg/core"
)

func TestBroker_FanOut(t *testing.T) {
	broker := core.NewBroker(slog.Default())

	var first, second []core.EventType
	broker.Subscribe(func(e core.Event) { first = append(first, e.Type) })
	broker.Subscribe(func(e core.Event) { second = append(second, e.Type) })

	broker.Publish(core.Event{Type: core.EventNoteSaved, Day: "2024-01-01"})
	broker.Publish(core.Event{Type: core.EventStatesChanged})

	assert.Equal(t, []core.EventType{core.EventNoteSaved, core.EventStatesChanged}, first)
	assert.Equal(t, []core.EventType{core.EventNoteSaved, core.EventStatesChanged}, second)
}

func TestBroker_SubscriberPanicIsolated(t *testing.T) {
	broker := core.NewBroker(slog.Default())

	broker.Subscribe(func(e core.Event) { panic("bad subscriber") })

	var delivered int
	broker.Subscribe(func(e core.Event) { delivered++ })

	// Must not panic, and the healthy subscriber still gets the event.
	require.NotPanics(t, func() {
		broker.Publish(core.Event{Type: core.EventNoteSaved})
	})
	assert.Equal(t, 1, delivered)
}

func TestBroker_Unsubscribe(t *testing.T) {
	broker := core.NewBroker(slog.Default())

	var count int
	cancel := broker.Subscribe(func(e core.Event) { count++ })
	require.Equal(t, 1, broker.Len())

	broker.Publish(core.Event{Type: core.EventNoteSaved})
	cancel()
	cancel() // idempotent
	broker.Publish(core.Event{Type: core.EventNoteSaved})

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, broker.Len())
}
