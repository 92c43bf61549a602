package notifier

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublishWithNoListeners(t *testing.T) {
	hub := NewHub(zap.NewNop())

	// Must return immediately even with nobody connected.
	done := make(chan struct{})
	go func() {
		hub.PublishBookingCreated(BookingCreatedEvent{Customer: "Jane", Room: "101", Time: time.Now()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked with no listeners")
	}

	assert.Equal(t, 0, hub.Listeners())
}

func TestBroadcastReachesListener(t *testing.T) {
	hub := NewHub(zap.NewNop())

	c := &connection{send: make(chan []byte, 8)}
	hub.register(c)
	defer hub.unregister(c)

	assert.Equal(t, 1, hub.Listeners())

	hub.PublishBookingCreated(BookingCreatedEvent{Customer: "Jane", Room: "101", Time: time.Now()})

	select {
	case data := <-c.send:
		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, EventBookingCreated, event.Type)

		payload, ok := event.Payload.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Jane", payload["customer"])
		assert.Equal(t, "101", payload["room"])
	case <-time.After(time.Second):
		t.Fatal("listener never received the event")
	}
}

func TestBroadcastDropsSlowListener(t *testing.T) {
	hub := NewHub(zap.NewNop())

	// Unbuffered channel with no reader simulates a stalled client.
	c := &connection{send: make(chan []byte)}
	hub.register(c)
	defer hub.unregister(c)

	done := make(chan struct{})
	go func() {
		hub.PublishStatusChanged(StatusChangedEvent{OrderID: "INV-1", Status: "paid", Time: time.Now()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow listener")
	}
}

func TestStatusChangedEnvelope(t *testing.T) {
	hub := NewHub(zap.NewNop())

	c := &connection{send: make(chan []byte, 1)}
	hub.register(c)
	defer hub.unregister(c)

	hub.PublishStatusChanged(StatusChangedEvent{OrderID: "INV-42", Status: "cancelled", Time: time.Now()})

	select {
	case data := <-c.send:
		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, EventStatusChanged, event.Type)

		payload, ok := event.Payload.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "INV-42", payload["order_id"])
		assert.Equal(t, "cancelled", payload["status"])
	case <-time.After(time.Second):
		t.Fatal("listener never received the event")
	}
}
