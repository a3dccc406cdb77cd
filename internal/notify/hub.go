package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pkordes/meal-board/internal/domain"
)

const (
	pingInterval = 25 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
	sendBuffer   = 16
)

// client is one websocket connection. Only its write loop touches conn for
// writing; gorilla/websocket allows a single concurrent writer.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub pushes every notice to all attached websocket connections as a JSON
// text frame. A client that falls sendBuffer notices behind is dropped.
type Hub struct {
	log *slog.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
}

// NewHub returns a Hub with no clients.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{log: log, clients: make(map[*client]struct{})}
}

// Notify broadcasts n. It never blocks on a slow client.
func (h *Hub) Notify(ctx context.Context, n domain.Notice) {
	msg, err := json.Marshal(n)
	if err != nil {
		h.log.ErrorContext(ctx, "encode notice", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.drop(c)
			h.log.WarnContext(ctx, "notice client dropped", "reason", "send buffer full")
		}
	}
}

// Clients returns the number of attached connections.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Serve attaches conn and blocks until the peer goes away or ctx is done.
// The connection is closed on return.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.log.DebugContext(ctx, "notice client attached", "remote", conn.RemoteAddr().String())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Read loop: notices flow one way, but reading is what surfaces a close
	// frame or a dead peer. Each pong pushes the deadline out; this also
	// replaces any deadline the HTTP server left on the hijacked conn.
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	h.writeLoop(ctx, c)

	h.mu.Lock()
	h.drop(c)
	h.mu.Unlock()
	_ = conn.Close()
	h.log.DebugContext(ctx, "notice client detached")
}

func (h *Hub) writeLoop(ctx context.Context, c *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
			return
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// drop detaches c and closes its send channel. Callers must hold mu.
func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}
