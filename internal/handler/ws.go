package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"

	"github.com/micronlogivdev/iftaway/internal/middleware"
	"github.com/micronlogivdev/iftaway/internal/service"
)

var (
	upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	// Heartbeat interval
	pingInterval = 30 * time.Second
	// Write timeout
	writeTimeout = 10 * time.Second
	// Read timeout, reset by every pong
	readTimeout = 60 * time.Second
)

// userMessage is an event payload addressed to one user's clients
type userMessage struct {
	userID int
	data   []byte
}

// Client represents a WebSocket client connection
type Client struct {
	ID     string
	UserID int
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *WSHub

	// mu guards closed; Send is only written or closed while holding it
	mu     sync.Mutex
	closed bool
}

// trySend queues msg without blocking. It returns false when the buffer is
// full or the client has been closed.
func (c *Client) trySend(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- msg:
		return true
	default:
		return false
	}
}

// close closes Send once. WritePump then sends a close frame and drops the
// connection, which ends ReadPump.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// WSHub fans entry and report events out to the owning user's clients
type WSHub struct {
	clients    map[*Client]bool
	broadcast  chan userMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	natsConn   *nats.Conn
	sub        *nats.Subscription
	mu         sync.RWMutex
}

// NewWSHub creates a new WebSocket hub. nc may be nil, in which case events
// only arrive through Publish.
func NewWSHub(nc *nats.Conn) *WSHub {
	return &WSHub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan userMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		natsConn:   nc,
	}
}

// Run starts the hub's event loop
func (h *WSHub) Run() {
	if h.natsConn != nil {
		sub, err := h.natsConn.Subscribe(service.EventSubjectPrefix+".>", func(msg *nats.Msg) {
			var event service.Event
			if err := json.Unmarshal(msg.Data, &event); err != nil {
				log.Printf("[WS] Failed to unmarshal event: %v", err)
				return
			}
			h.enqueue(userMessage{userID: event.UserID, data: msg.Data})
		})
		if err != nil {
			log.Printf("[WS] Failed to subscribe to NATS: %v", err)
		} else {
			h.sub = sub
			log.Println("[WS] Hub started, subscribed to NATS entry events")
		}
	}

	for {
		select {
		case <-h.done:
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("[WS] Client connected: %s (user %d), total clients: %d", client.ID, client.UserID, h.GetClientCount())

		case client := <-h.unregister:
			h.removeClient(client)
			log.Printf("[WS] Client disconnected: %s, total clients: %d", client.ID, h.GetClientCount())

		case message := <-h.broadcast:
			h.mu.RLock()
			targets := make([]*Client, 0)
			for client := range h.clients {
				if client.UserID == message.userID {
					targets = append(targets, client)
				}
			}
			h.mu.RUnlock()

			for _, client := range targets {
				if !client.trySend(message.data) {
					// Client send buffer is full, drop it
					h.removeClient(client)
				}
			}
		}
	}
}

func (h *WSHub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.close()
	}
}

func (h *WSHub) enqueue(msg userMessage) {
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("[WS] Broadcast queue full, dropping event for user %d", msg.userID)
	}
}

// Publish delivers an event straight to the hub. It lets the hub act as the
// event publisher when NATS is not available.
func (h *WSHub) Publish(_ context.Context, event service.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	h.enqueue(userMessage{userID: event.UserID, data: data})
	return nil
}

// Stop stops the hub. The event loop closes every client on its way out.
func (h *WSHub) Stop() {
	h.stopOnce.Do(func() {
		if h.sub != nil {
			h.sub.Unsubscribe()
		}
		close(h.done)
	})
}

func (h *WSHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.close()
		if client.Conn != nil {
			client.Conn.Close()
		}
		delete(h.clients, client)
	}
}

// GetClientCount returns the number of connected clients
func (h *WSHub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ReadPump keeps the connection alive and detects closes. Clients only send
// pings; any other message is ignored.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(4 * 1024)
	c.Conn.SetReadDeadline(time.Now().Add(readTimeout))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Client %s read error: %v", c.ID, err)
			}
			break
		}

		var msg struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(message, &msg); err == nil && msg.Type == "ping" {
			c.trySend([]byte(`{"type":"pong"}`))
		}
	}
}

// WritePump handles outgoing messages to the client
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// WSHandler handles WebSocket connections
type WSHandler struct {
	hub *WSHub
}

// NewWSHandler creates a new WebSocket handler
func NewWSHandler(hub *WSHub) *WSHandler {
	return &WSHandler{hub: hub}
}

// HandleEntries streams the authenticated user's entry and report events
func (h *WSHandler) HandleEntries(c *gin.Context) {
	userID := middleware.UserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 64),
		Hub:    h.hub,
	}

	// queued before registering so it is always the first frame
	if welcome, err := json.Marshal(gin.H{"type": "connected", "client_id": client.ID}); err == nil {
		client.trySend(welcome)
	}

	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

// GetStats returns WebSocket hub statistics
func (h *WSHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"connected_clients": h.hub.GetClientCount(),
	})
}
