package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventOrderUpdated tells subscribers to refetch the order.
const EventOrderUpdated = "order.updated"

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// orderEvent routes an event to the room of one order.
type orderEvent struct {
	OrderID uuid.UUID
	Event   Event
}

// Hub maintains the set of active clients and broadcasts messages to them.
// Clients are grouped in rooms, one per order.
type Hub struct {
	rooms map[uuid.UUID]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *orderEvent
	done       chan struct{}

	log *zap.Logger
	mu  sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *orderEvent, 256),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run starts the hub's main loop and returns when ctx is done, closing every
// client. Call it as a goroutine: go hub.Run(ctx)
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for orderID, clients := range h.rooms {
				for client := range clients {
					close(client.send)
				}
				delete(h.rooms, orderID)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.orderID] == nil {
				h.rooms[client.orderID] = make(map[*Client]bool)
			}
			h.rooms[client.orderID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case event := <-h.broadcast:
			message, err := json.Marshal(event.Event)
			if err != nil {
				h.log.Error("marshal websocket event", zap.String("type", event.Event.Type), zap.Error(err))
				continue
			}

			h.mu.Lock()
			for client := range h.rooms[event.OrderID] {
				select {
				case client.send <- message:
				default:
					// Send buffer full; drop the client.
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove unregisters client and drops its room when empty. Callers hold mu.
func (h *Hub) remove(client *Client) {
	clients, ok := h.rooms[client.orderID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.orderID)
	}
}

// BroadcastToOrder sends an event to every client watching orderID. It is
// a no-op once the hub has stopped.
func (h *Hub) BroadcastToOrder(orderID uuid.UUID, event Event) {
	select {
	case h.broadcast <- &orderEvent{OrderID: orderID, Event: event}:
	case <-h.done:
	}
}

// join registers client unless the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave unregisters client unless the hub has stopped.
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// OrderUpdated broadcasts EventOrderUpdated for orderID.
func (h *Hub) OrderUpdated(orderID uuid.UUID) {
	payload, _ := json.Marshal(map[string]string{"order_id": orderID.String()})
	h.BroadcastToOrder(orderID, Event{Type: EventOrderUpdated, Payload: payload})
}

// Watchers returns the number of clients in the room of orderID.
func (h *Hub) Watchers(orderID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[orderID])
}
