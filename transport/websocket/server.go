package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
)

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.View, error)
	GetView(ctx context.Context, id string) (*entity.View, error)
	ViewAt(ctx context.Context, id string, pointer int) (*entity.View, error)
	PlayMove(ctx context.Context, id string, row, column int) (*entity.View, error)
	JumpToMove(ctx context.Context, id string, destination int) (*entity.View, error)
	Reset(ctx context.Context, id string) (*entity.View, error)
}

type handlerFunc func(ctx context.Context, c *client, msg *Message) error

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	hub      *Hub
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameUseCase, hub *Hub) *Server {
	server := &Server{
		logger: logger.With("component", "ws"),
		games:  games,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionPlay] = server.handlePlay
	server.handlers[actionJump] = server.handleJump
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionView] = server.handleView

	return server
}

// Handler - the /ws endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS subscribes the connection to ?game=<id>, or to a new game when no id is given.
func (that *Server) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	view, err := that.openGame(r.Context(), r.URL.Query().Get("game"))
	if errors.Is(err, apperror.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to open game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	c := &client{conn: conn, gameID: view.ID}

	that.hub.subscribe(c)
	defer that.hub.unsubscribe(c)

	log = log.With("gameID", view.ID)
	log.Info("WebSocket connection established")

	if err = that.sendState(c, view); err != nil {
		log.Error("failed to send initial state", "error", err)
		return
	}

	if err = that.handleMessages(ctx, c); err != nil {
		log.Info("connection closed", "reason", err)
	}
}

func (that *Server) openGame(ctx context.Context, gameID string) (*entity.View, error) {
	if gameID == "" {
		return that.games.CreateGame(ctx)
	}

	return that.games.GetView(ctx, gameID)
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages", "gameID", c.gameID)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			if err = that.sendError(c, message.Action, apperror.ErrUnknownAction); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) sendState(c *client, view *entity.View) error {
	msg, err := newMessage(actionState, Payload{Game: view})
	if err != nil {
		return fmt.Errorf("failed to build state message: %w", err)
	}

	return c.send(msg)
}

func (that *Server) sendError(c *client, action string, cause error) error {
	msg, err := newMessage(action, Payload{Error: cause.Error()})
	if err != nil {
		return fmt.Errorf("failed to build error message: %w", err)
	}

	if err = c.send(msg); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
