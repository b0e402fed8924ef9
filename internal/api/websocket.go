package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.viam.com/utils"

	"devicequery/internal/protocol"
	"devicequery/internal/watch"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 50 * time.Second
	maxReadSize  = 4096
	sendBuffered = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The monitor is a local tool; access is guarded by the token.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type directMessage struct {
	client *wsClient
	data   []byte
}

// hub owns the set of WebSocket clients. Only the run goroutine touches the
// clients map and the send channels after registration.
type hub struct {
	logger golog.Logger

	clientsMu sync.RWMutex
	clients   map[*wsClient]bool

	messages   chan []byte
	direct     chan directMessage
	register   chan *wsClient
	unregister chan *wsClient
	shutdown   chan struct{}

	lifeMu                  sync.Mutex
	closed                  bool
	activeBackgroundWorkers sync.WaitGroup
}

// wsClient is one connected monitor.
type wsClient struct {
	id   string
	hub  *hub
	conn *websocket.Conn
	send chan []byte
	ip   string
}

func newHub(logger golog.Logger) *hub {
	h := &hub{
		logger:     logger,
		clients:    make(map[*wsClient]bool),
		messages:   make(chan []byte),
		direct:     make(chan directMessage),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		shutdown:   make(chan struct{}),
	}
	h.activeBackgroundWorkers.Add(1)
	utils.ManagedGo(h.run, h.activeBackgroundWorkers.Done)
	return h
}

func (h *hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.clientsMu.Unlock()
			h.logger.Debugw("websocket client registered", "id", client.id, "remote", client.ip, "clients", total)

		case client := <-h.unregister:
			h.drop(client)

		case data := <-h.messages:
			h.clientsMu.RLock()
			var slow []*wsClient
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					slow = append(slow, client)
				}
			}
			h.clientsMu.RUnlock()
			for _, client := range slow {
				h.logger.Warnw("dropping slow websocket client", "id", client.id, "remote", client.ip)
				h.drop(client)
			}

		case msg := <-h.direct:
			h.clientsMu.RLock()
			if h.clients[msg.client] {
				select {
				case msg.client.send <- msg.data:
				default:
				}
			}
			h.clientsMu.RUnlock()

		case <-h.shutdown:
			h.clientsMu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMu.Unlock()
			return
		}
	}
}

func (h *hub) drop(client *wsClient) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.Debugw("websocket client unregistered", "id", client.id, "clients", len(h.clients))
	}
}

func (h *hub) broadcast(msg protocol.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Errorw("failed to marshal broadcast message", "error", err)
		return
	}
	select {
	case h.messages <- data:
	case <-h.shutdown:
	}
}

func (h *hub) count() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// addWorkers reserves n goroutines that close will wait for. It fails once
// the hub is closed.
func (h *hub) addWorkers(n int) bool {
	h.lifeMu.Lock()
	defer h.lifeMu.Unlock()
	if h.closed {
		return false
	}
	h.activeBackgroundWorkers.Add(n)
	return true
}

// close disconnects every client and waits for their pumps to finish.
func (h *hub) close() error {
	h.lifeMu.Lock()
	if !h.closed {
		h.closed = true
		close(h.shutdown)
	}
	h.lifeMu.Unlock()
	h.activeBackgroundWorkers.Wait()
	return nil
}

// handleWebSocket handles GET /ws. The first message on the connection is a
// snapshot taken at connect time; events follow.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debugw("failed to upgrade connection", "error", err)
		return
	}

	client := &wsClient{
		id:   uuid.NewString(),
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, sendBuffered),
		ip:   r.RemoteAddr,
	}

	first, err := json.Marshal(protocol.NewSnapshot(watch.Take(s.source)))
	if err != nil {
		s.logger.Errorw("failed to marshal snapshot", "error", err)
		utils.UncheckedError(conn.Close())
		return
	}
	client.send <- first

	if !s.hub.addWorkers(2) {
		utils.UncheckedError(conn.Close())
		return
	}
	select {
	case s.hub.register <- client:
	case <-s.hub.shutdown:
		s.hub.activeBackgroundWorkers.Add(-2)
		utils.UncheckedError(conn.Close())
		return
	}

	utils.PanicCapturingGo(func() {
		defer s.hub.activeBackgroundWorkers.Done()
		client.writePump()
	})
	utils.PanicCapturingGo(func() {
		defer s.hub.activeBackgroundWorkers.Done()
		client.readPump()
	})
}

// readPump reads client messages until the connection fails.
func (c *wsClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.shutdown:
		}
		utils.UncheckedError(c.conn.Close())
	}()

	c.conn.SetReadLimit(maxReadSize)
	utils.UncheckedError(c.conn.SetReadDeadline(time.Now().Add(pongWait)))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debugw("websocket read error", "remote", c.ip, "error", err)
			}
			return
		}
		c.handleMessage(message)
	}
}

// writePump writes queued messages and keepalive pings until send is closed.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		utils.UncheckedError(c.conn.Close())
	}()

	for {
		select {
		case message, ok := <-c.send:
			utils.UncheckedError(c.conn.SetWriteDeadline(time.Now().Add(writeWait)))
			if !ok {
				// The hub closed the channel.
				utils.UncheckedError(c.conn.WriteMessage(websocket.CloseMessage, []byte{}))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			utils.UncheckedError(c.conn.SetWriteDeadline(time.Now().Add(writeWait)))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *wsClient) handleMessage(data []byte) {
	msg, err := protocol.Decode(data)
	if err != nil {
		c.hub.logger.Debugw("invalid websocket message", "remote", c.ip, "error", err)
		return
	}

	switch msg.Type {
	case protocol.TypePing:
		reply, err := json.Marshal(protocol.Message{Type: protocol.TypePing})
		if err != nil {
			return
		}
		select {
		case c.hub.direct <- directMessage{client: c, data: reply}:
		case <-c.hub.shutdown:
		}
	default:
		c.hub.logger.Debugw("ignoring websocket message", "remote", c.ip, "type", msg.Type)
	}
}
