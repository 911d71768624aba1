package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "gamecatalog/internal/infrastructure/websocket"
	"gamecatalog/pkg/logger"
)

type WebSocketHandler struct {
	wsManager *ws.Manager
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed is read-only public data; CORS middleware does not apply to upgrades.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(wsManager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
	}
}

// HandleCatalogFeed upgrades the connection and streams catalog events to it.
func (h *WebSocketHandler) HandleCatalogFeed(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logger.Warn("Catalog feed upgrade failed: %v", err)
		return nil
	}

	client := ws.NewClient(conn)
	if !h.wsManager.Add(client) {
		logger.Warn("Catalog feed is shutting down, rejecting client %s", client.ID)
		conn.Close()
		return nil
	}

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
