package websocket

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
)

const (
	writeWait      = 5 * time.Second
	maxMessageSize = 1 << 10
)

// client is one renderer connection subscribed to a single game.
type client struct {
	conn   *websocket.Conn
	gameID string

	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex
}

func (that *client) send(msg *Message) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// Hub fans game views out to every connection subscribed to the game.
type Hub struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]map[*client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger.With("component", "ws_hub"),
		subscribers: make(map[string]map[*client]struct{}),
	}
}

func (that *Hub) subscribe(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	clients, ok := that.subscribers[c.gameID]
	if !ok {
		clients = make(map[*client]struct{})
		that.subscribers[c.gameID] = clients
	}

	clients[c] = struct{}{}
}

func (that *Hub) unsubscribe(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	clients, ok := that.subscribers[c.gameID]
	if !ok {
		return
	}

	delete(clients, c)

	if len(clients) == 0 {
		delete(that.subscribers, c.gameID)
	}
}

// Subscribers - number of connections watching the game.
func (that *Hub) Subscribers(gameID string) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.subscribers[gameID])
}

// Publish sends the view to every subscriber of view.ID. Failed writes are
// logged; the reader loop of that connection cleans it up.
func (that *Hub) Publish(view *entity.View) {
	log := that.logger.With("method", "Publish", "gameID", view.ID)

	msg, err := newMessage(actionState, Payload{Game: view})
	if err != nil {
		log.Error("failed to build state message", "error", err)
		return
	}

	that.mu.RLock()
	clients := make([]*client, 0, len(that.subscribers[view.ID]))
	for c := range that.subscribers[view.ID] {
		clients = append(clients, c)
	}
	that.mu.RUnlock()

	for _, c := range clients {
		if err = c.send(msg); err != nil {
			log.Warn("failed to send game state", "error", err)
		}
	}
}
