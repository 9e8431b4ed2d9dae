// Package remote accepts burst triggers over a websocket. Commands are queued
// on a channel for the host to apply from its own update loop.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iburimskiy/confetti/internal/burst"
)

// Kind names a remote command.
type Kind string

const (
	KindBurst  Kind = "burst"
	KindReset  Kind = "reset"
	KindShower Kind = "shower"
)

// MaxMessageSize bounds one incoming message; larger ones close the connection.
const MaxMessageSize = 4096

// Command is a validated trigger waiting to be applied.
type Command struct {
	Kind   Kind
	Config burst.Config
}

type request struct {
	Type   Kind          `json:"type"`
	Config *burst.Config `json:"config,omitempty"`
}

type reply struct {
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

// Server is the trigger endpoint.
type Server struct {
	upgrader websocket.Upgrader
	commands chan Command
	http     *http.Server
}

// NewServer creates a server for addr that queues up to backlog commands.
func NewServer(addr string, backlog int) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		commands: make(chan Command, max(backlog, 1)),
	}
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Commands delivers triggers in arrival order.
func (s *Server) Commands() <-chan Command { return s.commands }

// Handler serves /ws and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	return mux
}

// ListenAndServe blocks until the server stops. It returns nil after Shutdown.
func (s *Server) ListenAndServe() error {
	log.Printf("[remote] listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("remote server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[remote] upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(MaxMessageSize)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[remote] read: %v", err)
			}
			return
		}

		var req request
		if err := json.Unmarshal(payload, &req); err != nil {
			msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "malformed message")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
			return
		}

		resp := s.dispatch(req)
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("[remote] write: %v", err)
			return
		}
	}
}

func (s *Server) dispatch(req request) reply {
	cmd := Command{Kind: req.Type}
	if req.Config != nil {
		cmd.Config = *req.Config
	}

	switch req.Type {
	case KindBurst, KindReset, KindShower:
	default:
		return reply{Type: "error", Error: fmt.Sprintf("unknown command %q", req.Type)}
	}

	select {
	case s.commands <- cmd:
		return reply{Type: "ok"}
	default:
		return reply{Type: "error", Error: "busy"}
	}
}
