package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/tahcohcat/puravida-web/internal/logger"
	"github.com/tahcohcat/puravida-web/internal/notify"
)

var upgrader = websocket.Upgrader{
	// the UI is served from the same local process or a dev server; cors guards the API
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const broadcastBuffer = 64

// Hub pushes every notification event to all connected UI clients. It is a
// notify.Sink; Notify never blocks the caller.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	quit       chan struct{}
	stopOnce   sync.Once
	connected  atomic.Int64
	log        *logger.Log
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func NewHub(l *logger.Log) *Hub {
	if l == nil {
		l = logger.New()
	}
	return &Hub{
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		quit:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		log:        l,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.connected.Store(int64(len(h.clients)))
			h.log.Debug(fmt.Sprintf("Client connected. Total: %d", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.connected.Store(int64(len(h.clients)))
				h.log.Debug(fmt.Sprintf("Client disconnected. Total: %d", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
					h.connected.Store(int64(len(h.clients)))
				}
			}

		case <-h.quit:
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.connected.Store(0)
			return
		}
	}
}

// Stop ends Run and closes every client connection. Later calls do nothing.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

// Clients is the number of connections currently registered.
func (h *Hub) Clients() int {
	return int(h.connected.Load())
}

// Notify queues e for broadcast. Events are dropped when the queue is full.
func (h *Hub) Notify(e notify.Event) {
	msg, err := json.Marshal(e)
	if err != nil {
		h.log.WithError(err).Warn("failed to encode event")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.WithField("kind", string(e.Kind)).Warn("notification queue full, dropping event")
	}
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.quit:
		}
		c.conn.Close()
	}()

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.WithError(err).Warn("websocket read error")
			}
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.hub.log.WithError(err).Warn("websocket write error")
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// ServeWS upgrades the request and registers the connection with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := &Client{hub: h, conn: conn, send: make(chan []byte, 256)}
	select {
	case h.register <- client:
	case <-h.quit:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func RegisterRoutes(r *mux.Router, hub *Hub) {
	r.HandleFunc("/ws", hub.ServeWS)
}
