// Package api serves the device state over HTTP and streams changes to
// WebSocket clients.
package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"devicequery"
	"devicequery/internal/protocol"
	"devicequery/internal/watch"
)

const shutdownTimeout = 5 * time.Second

// Server provides the monitor API for one device source.
type Server struct {
	source devicequery.DeviceQuery
	token  string
	logger golog.Logger
	hub    *hub

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener

	activeBackgroundWorkers sync.WaitGroup
}

// NewServer creates a server answering from source. An empty token disables
// authentication.
func NewServer(source devicequery.DeviceQuery, token string, logger golog.Logger) *Server {
	if logger == nil {
		logger = golog.Global().Named("api")
	}
	s := &Server{
		source: source,
		token:  token,
		logger: logger,
	}
	s.hub = newHub(logger)
	return s
}

// Handler returns the routes wrapped in the auth and recovery middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/mouse", s.handleMouse)
	mux.HandleFunc("GET /api/keys", s.handleKeys)
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return s.authMiddleware(s.recoverMiddleware(mux))
}

// Start listens on addr (e.g. "127.0.0.1:8765") and serves in the background.
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.httpServer != nil {
		return errors.New("server already started")
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", addr)
	}
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer := s.httpServer

	s.activeBackgroundWorkers.Add(1)
	utils.PanicCapturingGo(func() {
		defer s.activeBackgroundWorkers.Done()
		s.logger.Infow("serving", "url", "http://"+ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorw("error serving", "error", err)
		}
	})
	return nil
}

// Addr is the listening address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Publish streams the events of one poll to every WebSocket client.
func (s *Server) Publish(_ watch.Snapshot, events []watch.Event) {
	if len(events) == 0 {
		return
	}
	s.hub.broadcast(protocol.NewEvents(events))
}

// ClientCount is the number of connected WebSocket clients.
func (s *Server) ClientCount() int {
	return s.hub.count()
}

// Close shuts down the HTTP server and disconnects every WebSocket client.
func (s *Server) Close() (err error) {
	defer s.activeBackgroundWorkers.Wait()
	defer func() {
		err = multierr.Combine(err, s.hub.close())
	}()

	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()
	if httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(ctx)
}

// recoverMiddleware prevents panics from crashing the whole server
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Errorw("panic serving request", "path", r.URL.Path, "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authMiddleware checks the API token if configured. WebSocket clients that
// cannot set headers may pass it as the token query parameter.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debugw("request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)

		if r.URL.Path == "/health" || s.token == "" {
			next.ServeHTTP(w, r)
			return
		}

		given := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if r.URL.Path == "/ws" && given == "" {
			given = r.URL.Query().Get("token")
		}
		if subtle.ConstantTimeCompare([]byte(given), []byte(s.token)) != 1 {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleMouse handles GET /api/mouse
func (s *Server) handleMouse(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.source.GetMouse())
}

// handleKeys handles GET /api/keys
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	keys := s.source.GetKeys()
	if keys == nil {
		keys = []devicequery.Keycode{}
	}
	s.writeJSON(w, map[string][]devicequery.Keycode{"keys": keys})
}

// handleState handles GET /api/state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, protocol.NewSnapshot(watch.Take(s.source)).Payload)
}

// handleHealth handles GET /health (for monitoring)
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debugw("failed to write response", "error", err)
	}
}
