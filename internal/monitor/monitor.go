package monitor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mvantaa/pocketscan/internal/logging"
	"github.com/mvantaa/pocketscan/internal/render"
)

const (
	// Time allowed to write a frame to the peer
	writeWait = 10 * time.Second
)

// FrameMessage is the JSON payload pushed for every rendered frame.
type FrameMessage struct {
	Timestamp time.Time           `json:"timestamp"`
	Seq       int                 `json:"seq"`
	Lines     [render.Rows]string `json:"lines"`
}

// Server mirrors display frames to WebSocket clients on /frames.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	httpSrv  *http.Server

	mu    sync.Mutex
	conns map[string]*websocket.Conn
	last  *FrameMessage
	seq   int
}

// New creates a mirror server listening on addr.
func New(addr string) *Server {
	s := &Server{
		addr:  addr,
		conns: make(map[string]*websocket.Conn),
		upgrader: websocket.Upgrader{
			// The mirror is a local debugging aid, not an exposed
			// surface.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/frames", s.handleFrames)
	s.httpSrv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Start begins serving in the background. The returned error channel
// receives at most one error when the listener fails.
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 1)
	go func() {
		logging.Info("Frame mirror listening", zap.String("addr", s.addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("frame mirror: %w", err)
		}
	}()
	return errChan
}

// Shutdown stops the listener and closes all mirror connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for addr, conn := range s.conns {
		_ = conn.Close()
		delete(s.conns, addr)
	}
	s.mu.Unlock()

	return s.httpSrv.Shutdown(ctx)
}

// handleFrames upgrades the connection and registers it for frame
// pushes. The latest frame is replayed immediately so a client never
// starts with a blank display.
func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	remoteAddr := conn.RemoteAddr().String()
	logging.Info("Mirror client connected", zap.String("remote_addr", remoteAddr))

	s.mu.Lock()
	s.conns[remoteAddr] = conn
	last := s.last
	s.mu.Unlock()

	if last != nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(last); err != nil {
			s.drop(remoteAddr, err)
			return
		}
	}

	// Drain the read side so close frames and pings are processed; the
	// mirror never expects client messages.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(remoteAddr, err)
				return
			}
		}
	}()
}

// Show implements display.Sink. Clients that fail a write are dropped;
// a slow mirror must never stall the firmware loop for long.
func (s *Server) Show(f render.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	msg := &FrameMessage{
		Timestamp: time.Now(),
		Seq:       s.seq,
		Lines:     f.Padded(),
	}
	s.last = msg

	for addr, conn := range s.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			logging.Info("Dropping mirror client",
				zap.String("remote_addr", addr),
				zap.Error(err),
			)
			_ = conn.Close()
			delete(s.conns, addr)
		}
	}
}

// ClientCount returns the number of connected mirror clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *Server) drop(remoteAddr string, err error) {
	s.mu.Lock()
	conn, ok := s.conns[remoteAddr]
	if ok {
		delete(s.conns, remoteAddr)
	}
	s.mu.Unlock()

	if ok {
		_ = conn.Close()
		logging.Info("Mirror client disconnected",
			zap.String("remote_addr", remoteAddr),
			zap.Error(err),
		)
	}
}
