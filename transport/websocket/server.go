package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/alexdoe/portfolio-backend/internal/config"
	"github.com/alexdoe/portfolio-backend/internal/section"
	"github.com/alexdoe/portfolio-backend/internal/service"
)

type sessionHandler func(that *session, payload json.RawMessage) error

// Server upgrades page connections and runs one session per page: scroll
// reports in, active-section and game state out.
type Server struct {
	logger   *slog.Logger
	registry *section.Registry
	gameplay service.GamePlayService
	newRPS   func() *service.RPSEngine
	timings  config.Site
	upgrader websocket.Upgrader
	handlers map[string]sessionHandler
}

func New(logger *slog.Logger, registry *section.Registry, gameplay service.GamePlayService, newRPS func() *service.RPSEngine, timings config.Site) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		registry: registry,
		gameplay: gameplay,
		newRPS:   newRPS,
		timings:  timings,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}

	server.handlers = map[string]sessionHandler{
		ActionLayoutUpdate: (*session).handleLayoutUpdate,
		ActionScrollUpdate: (*session).handleScrollUpdate,
		ActionNavigate:     (*session).handleNavigate,
		ActionGameMove:     (*session).handleGameMove,
		ActionGameReset:    (*session).handleGameReset,
		ActionRPSPlay:      (*session).handleRPSPlay,
		ActionRPSNext:      (*session).handleRPSNext,
		ActionModalClose:   (*session).handleModalClose,
	}

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.handleConnection(w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handleConnection(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	sess := newSession(that.logger, conn, that.registry, that.gameplay, that.newRPS(), that.timings)
	defer sess.close()

	log.Info("session connected", "session", sess.id)
	sess.start()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Debug("session disconnected", "session", sess.id, "error", err)
			return
		}

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			log.Error("unknown action", "action", msg.Action)
			continue
		}

		if err = handler(sess, msg.Payload); err != nil {
			log.Error("failed to handle message", "action", msg.Action, "error", err)
		}
	}
}
