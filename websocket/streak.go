package websocket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/overstimulation/wellness-dashboard-team-project/models"
)

// StreakClient represents a dashboard client connected for streak updates
type StreakClient struct {
	Conn    *websocket.Conn
	UserID  string
	writeMu sync.Mutex
}

// SafeWriteJSON safely writes JSON data to the client's WebSocket connection
func (sc *StreakClient) SafeWriteJSON(v interface{}) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.Conn.WriteJSON(v)
}

// StreakHub tracks connected clients and fans streak events out to them.
type StreakHub struct {
	mu      sync.RWMutex
	clients map[*StreakClient]bool
}

func NewStreakHub() *StreakHub {
	return &StreakHub{clients: make(map[*StreakClient]bool)}
}

// Register adds a client to the hub
func (h *StreakHub) Register(client *StreakClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	log.Printf("Streak client registered. Total clients: %d", len(h.clients))
}

// Unregister removes a client and closes its connection
func (h *StreakHub) Unregister(client *StreakClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	client.Conn.Close()
	log.Printf("Streak client unregistered. Total clients: %d", len(h.clients))
}

// NotifyStreakUpdated broadcasts a streak event to all connected clients.
// Implements the daily-log service's notifier interface.
func (h *StreakHub) NotifyStreakUpdated(event models.StreakEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if err := client.SafeWriteJSON(event); err != nil {
			log.Printf("Error broadcasting streak event to client: %v", err)
			// Remove client if write fails
			go h.Unregister(client)
		}
	}

	log.Printf("Broadcasted streak event for user %s to %d clients", event.UserID, len(h.clients))
}

// ClientCount returns the number of connected clients.
func (h *StreakHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
