package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans accepted check-ins out to instructor connections, keyed by
// session id. A connection is subscribed to at most one session; publishing
// to a session with no subscribers is a silent no-op, nothing is buffered.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*websocket.Conn]bool
	conns    map[*websocket.Conn]string
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[*websocket.Conn]bool),
		conns:    make(map[*websocket.Conn]string),
	}
}

// Subscribe attaches conn to sessionID. If the connection was already
// subscribed elsewhere it is switched, not added.
func (h *Hub) Subscribe(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.detach(conn)

	if h.sessions[sessionID] == nil {
		h.sessions[sessionID] = make(map[*websocket.Conn]bool)
	}
	h.sessions[sessionID][conn] = true
	h.conns[conn] = sessionID
	log.Printf("ws: client subscribed to session %s (total: %d)", sessionID, len(h.sessions[sessionID]))
}

// Unsubscribe detaches and closes the connection.
func (h *Hub) Unsubscribe(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.detach(conn)
	conn.Close()
}

func (h *Hub) detach(conn *websocket.Conn) {
	prev, ok := h.conns[conn]
	if !ok {
		return
	}
	delete(h.conns, conn)
	if conns, ok := h.sessions[prev]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.sessions, prev)
		}
	}
}

// Broadcast sends message to every subscriber of sessionID.
func (h *Hub) Broadcast(sessionID string, message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
			delete(h.conns, conn)
		}
	}
}

// SubscriberCount reports how many connections follow the session.
func (h *Hub) SubscriberCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}
