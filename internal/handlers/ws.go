package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Berley24/chamadaaaa/internal/store"
	"github.com/Berley24/chamadaaaa/internal/ws"
)

type WSHandler struct {
	hub   *ws.Hub
	store *store.Store
}

func NewWSHandler(hub *ws.Hub, st *store.Store) *WSHandler {
	return &WSHandler{hub: hub, store: st}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Subscribe godoc
// @Summary  Follow a session's accepted check-ins in real time
// @Description  Emits one attendee_accepted message per successful join.
func (h *WSHandler) Subscribe(c *gin.Context) {
	sessionID := c.Param("id")
	if _, ok := h.store.Get(sessionID); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.Subscribe(sessionID, conn)
	defer h.hub.Unsubscribe(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
