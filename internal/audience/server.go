package audience

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"pkt.systems/pslog"

	"seminar/internal/deck"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Server is the HTTP side of the mirror.
type Server struct {
	hub      *Hub
	router   *mux.Router
	upgrader websocket.Upgrader
	logger   pslog.Logger
}

// NewServer builds the routes over hub. The logger is taken from ctx.
func NewServer(ctx context.Context, hub *Hub) *Server {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &Server{
		hub:    hub,
		logger: pslog.Ctx(ctx).With("component", "audience"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/sections/{id}", s.handleSection).Methods(http.MethodGet)
	r.HandleFunc("/api/sections", s.handleSections).Methods(http.MethodGet)
	r.HandleFunc("/api/current", s.handleCurrent).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS)
	r.Use(s.logRequests)
	s.router = r
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("audience listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	s.logger.Info("audience mirror listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("audience serve: %w", err)
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("audience request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

// handleRoot redirects to the section the presenter is on.
// GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/sections/"+string(s.hub.Current()), http.StatusFound)
}

// handleSection renders one slide body. Unknown ids render the intro slide.
// GET /sections/{id}
func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	id := deck.SectionID(mux.Vars(r)["id"])
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, id); err != nil {
		s.logger.Warn("audience render failed", "id", id, "err", err)
	}
}

// handleSections lists the registry in order.
// GET /api/sections
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	sections := deck.Sections()
	out := make([]SectionInfo, len(sections))
	for i, sec := range sections {
		out[i] = SectionInfo{ID: sec.ID, Label: sec.Label, Badge: deck.Badge(i)}
	}
	writeJSON(w, out)
}

// handleCurrent reports the presenter's section.
// GET /api/current
func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Info(s.hub.Current()))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// handleWS pushes the current section on connect and after every transition.
// GET /ws
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("audience websocket upgrade failed", "err", err)
		return
	}
	c, ok := s.hub.subscribe()
	if !ok {
		_ = conn.Close()
		return
	}
	s.logger.Info("audience viewer connected", "remote", r.RemoteAddr, "viewers", s.hub.Viewers())

	go s.readPump(conn, c)
	s.writePump(conn, c)
	s.logger.Info("audience viewer disconnected", "remote", r.RemoteAddr)
}

// readPump discards viewer messages and unsubscribes when the socket closes.
func (s *Server) readPump(conn *websocket.Conn, c *client) {
	defer s.hub.unsubscribe(c)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writePump(conn *websocket.Conn, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.hub.unsubscribe(c)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.hub.unsubscribe(c)
				return
			}
		}
	}
}
