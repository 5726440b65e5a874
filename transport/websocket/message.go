package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
)

const (
	actionPlay  = "game:play"
	actionJump  = "game:jump"
	actionReset = "game:reset"
	actionView  = "game:view"
	actionState = "game:state"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries intents from renderers and game views back to them.
type Payload struct {
	Game        *entity.View `json:"game,omitempty"`
	Row         *int         `json:"row,omitempty"`
	Column      *int         `json:"column,omitempty"`
	Destination *int         `json:"destination,omitempty"`
	Pointer     *int         `json:"pointer,omitempty"`
	Error       string       `json:"error,omitempty"`
}

func newMessage(action string, payload Payload) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Message{Action: action, Payload: data}, nil
}
