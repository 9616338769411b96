package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func TestPublishDeliversEventToRegisteredClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := &Client{Hub: hub, Send: make(chan []byte, 4)}
	second := &Client{Hub: hub, Send: make(chan []byte, 4)}
	hub.register <- first
	hub.register <- second

	hub.Publish("category.created", map[string]string{"name": "Books"})

	for _, client := range []*Client{first, second} {
		select {
		case raw := <-client.Send:
			var event Event
			require.NoError(t, json.Unmarshal(raw, &event))
			assert.Equal(t, "category.created", event.Event)
			data, ok := event.Data.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "Books", data["name"])
		case <-time.After(time.Second):
			t.Fatal("event was not delivered to client")
		}
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Hub: hub, Send: make(chan []byte, 4)}
	hub.register <- client
	hub.unregister <- client

	assert.Eventually(t, func() bool {
		return hub.clientCount() == 0
	}, time.Second, 10*time.Millisecond)

	// Close on unregister releases the writePump
	_, open := <-client.Send
	assert.False(t, open)
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// No buffer and no reader: the broadcast cannot be accepted
	slow := &Client{Hub: hub, Send: make(chan []byte)}
	hub.register <- slow

	hub.Publish("product.updated", nil)

	assert.Eventually(t, func() bool {
		return hub.clientCount() == 0
	}, time.Second, 10*time.Millisecond)

	_, open := <-slow.Send
	assert.False(t, open)
}

func TestPublishOnNilHubIsNoop(t *testing.T) {
	var hub *Hub
	assert.NotPanics(t, func() {
		hub.Publish("category.deleted", map[string]string{"name": "Books"})
	})
}
