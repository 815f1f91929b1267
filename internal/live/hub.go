package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// MessageType represents the type of live message.
type MessageType string

const (
	// TypeSnapshot replaces the inner HTML of Target.
	TypeSnapshot MessageType = "snapshot"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type   MessageType `json:"type"`
	Target string      `json:"target"`
	HTML   string      `json:"html"`
}

// ClientObserver is told when clients come and go. *metrics.Collector
// satisfies it.
type ClientObserver interface {
	LiveClientConnected()
	LiveClientDisconnected()
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the hub logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithObserver sets the client observer.
func WithObserver(o ClientObserver) Option {
	return func(h *Hub) {
		h.observer = o
	}
}

// WithCheckOrigin overrides the upgrader's origin check. By default only
// same-origin upgrades are accepted.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(h *Hub) {
		h.upgrader.CheckOrigin = fn
	}
}

// WithSendBuffer sets how many snapshots may wait for one client before it
// is disconnected as too slow.
func WithSendBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.sendBuffer = n
		}
	}
}

const (
	writeTimeout      = 5 * time.Second
	defaultSendBuffer = 64
)

// client is one browser connection. Its writer goroutine owns all writes.
type client struct {
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// Hub pushes container snapshots to connected browsers.
//
// Each target keeps its latest snapshot; a new client receives those first,
// then every later snapshot. Publish never waits on the network: snapshots
// are queued per client and a client whose queue is full is dropped.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*client]struct{}
	latest     map[string][]byte
	order      []string
	upgrader   websocket.Upgrader
	logger     *slog.Logger
	observer   ClientObserver
	sendBuffer int
}

// NewHub creates a new hub.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		clients: make(map[*client]struct{}),
		latest:  make(map[string][]byte),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger:     slog.Default().With("component", "live"),
		sendBuffer: defaultSendBuffer,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	c := &client{
		conn: conn,
		send: make(chan []byte, h.sendBuffer+len(h.order)),
		done: make(chan struct{}),
	}
	for _, target := range h.order {
		c.send <- h.latest[target]
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	if h.observer != nil {
		h.observer.LiveClientConnected()
	}
	h.logger.Debug("live client connected", "remote", r.RemoteAddr)

	go h.writeLoop(c)

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.drop(c)
}

func (h *Hub) writeLoop(c *client) {
	for {
		select {
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Debug("live write failed", "error", err)
				c.close()
				return
			}
		case <-c.done:
			return
		}
	}
}

// Publish stores html as the latest snapshot of target and queues it for
// every client. It does not block.
func (h *Hub) Publish(target, html string) {
	data, err := json.Marshal(Message{Type: TypeSnapshot, Target: target, HTML: html})
	if err != nil {
		return
	}

	var slow []*client
	h.mu.Lock()
	if _, seen := h.latest[target]; !seen {
		h.order = append(h.order, target)
	}
	h.latest[target] = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.Unlock()

	for _, c := range slow {
		h.logger.Warn("live client too slow, disconnecting", "remote", c.conn.RemoteAddr().String())
		c.close()
	}
}

// drop removes c once; the read loop calls it after the connection fails
// or is closed.
func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, present := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	c.close()
	if present && h.observer != nil {
		h.observer.LiveClientDisconnected()
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.close()
	}
}
