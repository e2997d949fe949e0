package live

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

// Hub fans booking and event updates out to websocket subscribers, keyed by
// event ID. Constructed in main and passed to the handlers that broadcast.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string][]*websocket.Conn)}
}

// Subscribe upgrades the request and blocks until the client disconnects.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, key string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	h.subscribers[key] = append(h.subscribers[key], conn)
	h.mu.Unlock()

	for {
		// keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	conns := h.subscribers[key]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	h.subscribers[key] = newList
	h.mu.Unlock()

	conn.Close()
}

// Broadcast sends val to every subscriber of key, dropping dead connections.
func (h *Hub) Broadcast(key string, val []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.subscribers[key]
	newList := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, val); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	h.subscribers[key] = newList
}

// Stop closes every open subscriber connection.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key, conns := range h.subscribers {
		for _, conn := range conns {
			conn.Close()
		}
		delete(h.subscribers, key)
	}
}
