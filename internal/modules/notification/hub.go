package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one live websocket per client. A client reconnecting replaces
// its previous connection.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(clientID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[clientID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[clientID] = conn
}

func (h *Hub) Unregister(clientID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[clientID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, clientID)
	}
}

// Push writes a JSON message to the client's connection if one is live.
// Returns false when the client is offline or the write failed.
func (h *Hub) Push(clientID int64, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[clientID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(clientID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(clientID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[clientID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for clientID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, clientID)
	}
}
