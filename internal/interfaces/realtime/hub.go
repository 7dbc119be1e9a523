package realtime

import (
	"bytes"
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/learnquest/internal/domain/gamification"
	"github.com/riskibarqy/learnquest/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultQueueSize        = 256
	defaultBroadcastWorkers = 8
	defaultWriteWait        = 5 * time.Second
	defaultPongWait         = 60 * time.Second
)

type Config struct {
	AllowedOrigins   []string
	BroadcastWorkers int
	QueueSize        int
	WriteWait        time.Duration
	PongWait         time.Duration
}

type client struct {
	conn    *websocket.Conn
	userID  string
	writeMu sync.Mutex
}

func (c *client) write(messageType int, payload []byte, deadline time.Time) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, payload)
}

// Hub fans gamification events out to every connected websocket client.
// Publish never blocks the caller; events are dropped when the queue is full.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *logging.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}

	queue     chan gamification.Event
	workers   int
	writeWait time.Duration
	pongWait  time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

func NewHub(cfg Config, logger *logging.Logger) *Hub {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.BroadcastWorkers <= 0 {
		cfg.BroadcastWorkers = defaultBroadcastWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = defaultWriteWait
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = defaultPongWait
	}

	allowed := append([]string(nil), cfg.AllowedOrigins...)
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(allowed, r.Header.Get("Origin"))
			},
		},
		logger:    logger,
		clients:   make(map[*client]struct{}),
		queue:     make(chan gamification.Event, cfg.QueueSize),
		workers:   cfg.BroadcastWorkers,
		writeWait: cfg.WriteWait,
		pongWait:  cfg.PongWait,
		done:      make(chan struct{}),
	}
}

// Publish implements gamification.Publisher.
func (h *Hub) Publish(ctx context.Context, event gamification.Event) {
	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.queue <- event:
	default:
		h.logger.WarnContext(ctx, "gamification event dropped, queue full", "type", string(event.Type), "user_id", event.UserID)
	}
}

// Run drains the event queue until ctx is cancelled or the hub is closed.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return
		case event := <-h.queue:
			h.broadcast(ctx, event)
		}
	}
}

func (h *Hub) broadcast(ctx context.Context, event gamification.Event) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(event); err != nil {
		h.logger.ErrorContext(ctx, "encode gamification event failed", "type", string(event.Type), "error", err)
		return
	}
	payload := bytes.TrimRight(buf.B, "\n")

	targets := h.snapshot()
	if len(targets) == 0 {
		return
	}

	deadline := time.Now().Add(h.writeWait)
	p := pool.New().WithMaxGoroutines(h.workers)
	for _, c := range targets {
		p.Go(func() {
			if err := c.write(websocket.TextMessage, payload, deadline); err != nil {
				h.logger.DebugContext(ctx, "gamification client write failed", "user_id", c.userID, "error", err)
				h.unregister(c)
			}
		})
	}
	p.Wait()

	h.logger.DebugContext(ctx, "gamification event broadcast", "type", string(event.Type), "clients", len(targets))
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the peer goes away. Client messages are read only to detect disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, userID: strings.TrimSpace(r.URL.Query().Get("userId"))}
	h.register(c)
	defer h.unregister(c)

	stopPing := make(chan struct{})
	defer close(stopPing)
	go h.pingLoop(c, stopPing)

	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) pingLoop(c *client, stop <-chan struct{}) {
	ticker := time.NewTicker(h.pongWait * 9 / 10)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-h.done:
			return
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil, time.Now().Add(h.writeWait)); err != nil {
				return
			}
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("gamification client registered", "user_id", c.userID, "clients", total)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	total := len(h.clients)
	h.mu.Unlock()
	if !ok {
		return
	}
	_ = c.conn.Close()
	h.logger.Info("gamification client unregistered", "user_id", c.userID, "clients", total)
}

func (h *Hub) snapshot() []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and stops Run.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		for _, c := range h.snapshot() {
			h.unregister(c)
		}
	})
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" || len(allowed) == 0 {
		return true
	}
	return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
}
