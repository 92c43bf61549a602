// Package notifier fans booking lifecycle events out to connected staff
// clients over websockets. Delivery is best-effort: publishing never
// blocks and never fails the operation that produced the event.
package notifier

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // restrict in prod
}

const (
	EventBookingCreated = "new_booking"
	EventStatusChanged  = "status_changed"
)

// Event is the wire envelope pushed to staff clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// BookingCreatedEvent announces a fresh booking.
type BookingCreatedEvent struct {
	Customer string    `json:"customer"`
	Room     string    `json:"room"`
	Time     time.Time `json:"time"`
}

// StatusChangedEvent announces an invoice status transition.
type StatusChangedEvent struct {
	OrderID string    `json:"order_id"`
	Status  string    `json:"status"`
	Time    time.Time `json:"time"`
}

// connection is a single staff websocket client
type connection struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub manages all connected staff sessions.
type Hub struct {
	mu          sync.RWMutex
	connections map[*connection]struct{}
	log         *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		connections: make(map[*connection]struct{}),
		log:         log.With(zap.String("component", "notifier")),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[c]; ok {
		delete(h.connections, c)
		close(c.send)
	}
}

// PublishBookingCreated broadcasts a new-booking event to all staff listeners.
func (h *Hub) PublishBookingCreated(event BookingCreatedEvent) {
	h.broadcast(Event{Type: EventBookingCreated, Payload: event})
}

// PublishStatusChanged broadcasts an invoice status transition.
func (h *Hub) PublishStatusChanged(event StatusChangedEvent) {
	h.broadcast(Event{Type: EventStatusChanged, Payload: event})
}

func (h *Hub) broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("Failed to marshal event", zap.Error(err), zap.String("type", event.Type))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		select {
		case c.send <- data:
		default:
			// Client too slow, drop rather than block the caller
		}
	}
}

// Listeners reports the number of connected staff sessions.
func (h *Hub) Listeners() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// ServeWS upgrades the request and runs the connection until disconnect.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &connection{
		conn: conn,
		send: make(chan []byte, 64),
	}

	h.register(c)
	h.log.Info("Staff listener connected", zap.Int("listeners", h.Listeners()))

	go h.writePump(c)
	h.readPump(c) // blocks until disconnect

	return nil
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Staff clients only listen; inbound frames are drained for ping/pong
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
