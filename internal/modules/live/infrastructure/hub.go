package infrastructure

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"campusAdmin/internal/modules/live/domain"
)

const clientSendBuffer = 16

// Hub fans resource-change events out to websocket subscribers. A client
// subscribed to a resource topic receives that resource's events; clients
// with no topic receive everything.
type Hub struct {
	mu      sync.RWMutex
	topics  map[string]map[*client]struct{}
	global  map[*client]struct{}
	upgrade websocket.Upgrader
}

type client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	topic     string
	closeOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[*client]struct{}),
		global: make(map[*client]struct{}),
		upgrade: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Broadcast delivers the event to the resource's subscribers and to global
// listeners. Slow clients are detached rather than blocking the feed.
func (h *Hub) Broadcast(event domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("live broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.topics[event.Resource])+len(h.global))
	for c := range h.topics[event.Resource] {
		targets = append(targets, c)
	}
	for c := range h.global {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		select {
		case c.send <- data:
		default:
			slog.Warn("live client send buffer full", slog.String("resource", event.Resource))
			go h.detach(c)
		}
	}
}

// ServeWS upgrades the request and registers the connection. The optional
// resource query parameter narrows the subscription to one topic.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrade.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		hub:   h,
		conn:  conn,
		send:  make(chan []byte, clientSendBuffer),
		topic: strings.TrimSpace(r.URL.Query().Get("resource")),
	}
	h.attach(c)
	slog.Info("live client connected", slog.String("resource", c.topic))

	go c.writePump()
	go c.readPump()
	return nil
}

func (h *Hub) attach(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c.topic == "" {
		h.global[c] = struct{}{}
		return
	}
	if h.topics[c.topic] == nil {
		h.topics[c.topic] = make(map[*client]struct{})
	}
	h.topics[c.topic][c] = struct{}{}
}

func (h *Hub) detach(c *client) {
	h.mu.Lock()
	if c.topic == "" {
		delete(h.global, c)
	} else if subs, ok := h.topics[c.topic]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.topics, c.topic)
		}
	}
	h.mu.Unlock()
	c.close()
}

// SubscriberCount reports how many clients would currently receive an event
// for the resource.
func (h *Hub) SubscriberCount(resource string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[resource]) + len(h.global)
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}

func (c *client) writePump() {
	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.hub.detach(c)
				return
			}
		case <-ping.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.hub.detach(c)
				return
			}
		}
	}
}

// readPump discards inbound frames; it exists to notice the peer going away.
func (c *client) readPump() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			c.hub.detach(c)
			return
		}
	}
}
