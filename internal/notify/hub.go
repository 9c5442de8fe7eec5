package notify

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Srivastav4327/RentMate/internal/access"
)

// Logger provides minimal logging required by the notification module.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Hub manages websocket connections keyed by user id.
type Hub struct {
	upgrader   websocket.Upgrader
	logger     Logger
	pingPeriod time.Duration

	mu    sync.RWMutex
	conns map[string]*websocket.Conn
	wmu   map[string]*sync.Mutex
}

func NewHub(logger Logger) *Hub {
	return &Hub{
		upgrader:   websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		logger:     logger,
		pingPeriod: pingPeriod,
		conns:      make(map[string]*websocket.Conn),
		wmu:        make(map[string]*sync.Mutex),
	}
}

// ServeWS upgrades an authenticated request. The caller's identity must
// already be in the request context.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	id, ok := access.IdentityFrom(r.Context())
	if !ok || !id.Authenticated {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Errorf("ws upgrade failed for %s: %v", id.ID, err)
		return
	}

	h.mu.Lock()
	if old, ok := h.conns[id.ID]; ok {
		_ = old.Close()
	}
	h.conns[id.ID] = conn
	if _, ok := h.wmu[id.ID]; !ok {
		h.wmu[id.ID] = &sync.Mutex{}
	}
	h.mu.Unlock()

	h.logger.Infof("user %s connected", id.ID)
	go h.readLoop(id.ID, conn)
}

func (h *Hub) readLoop(userID string, conn *websocket.Conn) {
	done := make(chan struct{})
	go h.pingLoop(userID, conn, done)
	defer func() {
		close(done)
		conn.Close()
		h.mu.Lock()
		if h.conns[userID] == conn {
			delete(h.conns, userID)
			delete(h.wmu, userID)
		}
		h.mu.Unlock()
		h.logger.Infof("user %s disconnected", userID)
	}()

	conn.SetReadLimit(1024)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		if mt == websocket.TextMessage && strings.EqualFold(strings.TrimSpace(string(msg)), "ping") {
			h.write(userID, func(c *websocket.Conn) error {
				return c.WriteMessage(websocket.TextMessage, []byte("pong"))
			})
		}
	}
}

// pingLoop keeps idle connections alive. The client's pong extends the read
// deadline in readLoop; a failed ping closes the connection.
func (h *Hub) pingLoop(userID string, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.logger.Errorf("user %s ping failed: %v", userID, err)
				conn.Close()
				return
			}
		}
	}
}

func (h *Hub) Connected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.conns[userID]
	return ok
}

func (h *Hub) write(userID string, writer func(*websocket.Conn) error) bool {
	h.mu.RLock()
	conn := h.conns[userID]
	mu := h.wmu[userID]
	h.mu.RUnlock()
	if conn == nil || mu == nil {
		return false
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := writer(conn); err != nil {
		h.logger.Errorf("user %s write failed: %v", userID, err)
		return false
	}
	return true
}

// Push sends the event to the user's live connection and reports whether it
// was delivered.
func (h *Hub) Push(userID string, ev Event) bool {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Errorf("encode event %s: %v", ev.Type, err)
		return false
	}
	return h.write(userID, func(conn *websocket.Conn) error {
		return conn.WriteMessage(websocket.TextMessage, data)
	})
}
