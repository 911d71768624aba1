package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"gamecatalog/internal/domain/entity"
	"gamecatalog/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 64
	broadcastQueue = 256
)

// Client represents a subscriber of the catalog event feed.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, sendBufferSize),
	}
}

// Manager fans catalog events out to every connected client. The client set
// is only mutated by the goroutine started in Start.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, broadcastQueue),
		done:       make(chan struct{}),
	}
}

// Start runs the manager's main loop in a goroutine until ctx is done.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("Catalog feed client registered: %s", client.ID)

			case client := <-m.Unregister:
				m.remove(client.ID)
				logger.Debug("Catalog feed client unregistered: %s", client.ID)

			case message := <-m.broadcast:
				m.mutex.RLock()
				var slow []string
				for id, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						slow = append(slow, id)
					}
				}
				m.mutex.RUnlock()
				for _, id := range slow {
					logger.Warn("Dropping slow catalog feed client: %s", id)
					m.remove(id)
				}

			case <-ctx.Done():
				close(m.done)
				m.mutex.Lock()
				for id, client := range m.clients {
					close(client.Send)
					delete(m.clients, id)
				}
				m.mutex.Unlock()
				return
			}
		}
	}()
}

// Broadcast queues event for delivery. It never blocks the caller; events are
// dropped when the queue is full.
func (m *Manager) Broadcast(event entity.CatalogEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode catalog event %s: %v", event.Type, err)
		return
	}

	select {
	case m.broadcast <- payload:
	default:
		logger.Warn("Catalog event queue full, dropping %s for id=%d", event.Type, event.VideoGameID)
	}
}

// Add registers client with the running manager. It returns false once the
// manager has stopped.
func (m *Manager) Add(client *Client) bool {
	select {
	case m.Register <- client:
		return true
	case <-m.done:
		return false
	}
}

func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

func (m *Manager) remove(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if client, ok := m.clients[id]; ok {
		delete(m.clients, id)
		close(client.Send)
	}
}

// ReadPump drains the connection so control frames are processed, and
// unregisters the client once the peer goes away.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		select {
		case m.Unregister <- c:
		case <-m.done:
		}
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Catalog feed client %s: %v", c.ID, err)
			}
			return
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Catalog feed client %s write failed: %v", c.ID, err)
			return
		}
	}

	c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
