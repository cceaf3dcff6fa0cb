package notification

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans notifications out to a user's open websocket connections. A user
// may have several tabs open; each registers its own connection.
type Hub struct {
	mu    sync.Mutex
	conns map[string][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string][]*websocket.Conn)}
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[userID] = append(h.conns[userID], conn)
}

func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	active := h.conns[userID][:0]
	for _, c := range h.conns[userID] {
		if c != conn {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		delete(h.conns, userID)
	} else {
		h.conns[userID] = active
	}
	_ = conn.Close()
}

// Push writes payload to every open connection for userID. Dead connections
// are dropped silently; the reader goroutine cleans them up on its next read.
func (h *Hub) Push(userID string, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.conns[userID] {
		_ = c.WriteJSON(payload)
	}
}
