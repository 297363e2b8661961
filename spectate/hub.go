// Package spectate streams match snapshots to read-only websocket viewers
package spectate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/neon-pong/config"
	"github.com/lixenwraith/neon-pong/core"
	"github.com/lixenwraith/neon-pong/parameter"
	"github.com/lixenwraith/neon-pong/status"
)

// Path is where the feed is mounted
const Path = "/ws"

type frame struct {
	kind int
	data []byte
}

type client struct {
	id     string
	conn   *websocket.Conn
	format Format
	send   chan frame
	once   sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub fans snapshots out to connected spectators
// A client whose send buffer is full misses that frame; the hub never blocks the game loop
type Hub struct {
	mu      sync.Mutex
	clients map[string]*client
	closed  bool

	every    uint64
	upgrader websocket.Upgrader
	dropped  *atomic.Int64
	latest   atomic.Pointer[core.Match]
}

func NewHub(cfg config.SpectateConfig, reg *status.Registry) *Hub {
	every := cfg.BroadcastEvery
	if every < 1 {
		every = 1
	}
	return &Hub{
		clients: make(map[string]*client),
		every:   uint64(every),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		dropped: reg.Ints.Get(status.KeyDroppedFrames),
	}
}

// Count returns the number of connected spectators
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns the number of frames skipped for slow clients
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// OnFrame is an engine.Loop hook; broadcasts one snapshot every BroadcastEvery ticks
func (h *Hub) OnFrame(m *core.Match) {
	h.latest.Store(m)
	if m.Tick%h.every != 0 {
		return
	}
	h.Broadcast(m)
}

// Broadcast encodes m once per format in use and queues it for every client
func (h *Hub) Broadcast(m *core.Match) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}

	var encoded [formatCount][]byte
	for _, c := range h.clients {
		data := encoded[c.format]
		if data == nil {
			var err error
			if data, err = Encode(m, c.format); err != nil {
				log.Printf("spectate: encode %s: %v", c.format, err)
				continue
			}
			encoded[c.format] = data
		}
		select {
		case c.send <- frame{kind: c.format.MessageType(), data: data}:
		default:
			h.dropped.Add(1)
		}
	}
}

// Handler returns the HTTP mux serving the feed at Path
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, h.serveWS)
	return mux
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	format, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate: upgrade failed: %v", err)
		return
	}

	c := &client{
		id:     uuid.NewString(),
		conn:   conn,
		format: format,
		send:   make(chan frame, parameter.SpectateSendBuffer),
	}
	if !h.register(c) {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	log.Printf("spectate: %s joined (%s)", c.id, format)

	go h.writePump(c)
	h.readPump(c)
}

// register adds c and queues the most recent snapshot so a new viewer sees the field immediately
func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c

	if m := h.latest.Load(); m != nil {
		if data, err := Encode(m, c.format); err == nil {
			c.send <- frame{kind: c.format.MessageType(), data: data}
		}
	}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		c.close()
		log.Printf("spectate: %s left", c.id)
	}
	h.mu.Unlock()
}

// readPump discards inbound messages; it only services control frames and detects disconnects
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(parameter.SpectateReadLimit)
	c.conn.SetReadDeadline(time.Now().Add(parameter.SpectatePongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(parameter.SpectatePongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("spectate: %s read: %v", c.id, err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(parameter.SpectatePingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case f, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.SpectateWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(f.kind, f.data); err != nil {
				log.Printf("spectate: %s write: %v", c.id, err)
				h.unregister(c)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.SpectateWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unregister(c)
				return
			}
		}
	}
}

// Close disconnects every spectator and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, c := range h.clients {
		delete(h.clients, id)
		c.close()
	}
}

// ListenAndServe serves the feed on addr until ctx is cancelled
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: listen %s: %w", addr, err)
	case <-ctx.Done():
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
