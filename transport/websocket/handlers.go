package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var errMissingField = errors.New("missing field in payload")

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

// handlePlay - the new state reaches every subscriber, the sender included, through the hub.
func (that *Server) handlePlay(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(c, msg.Action, err)
	}

	if payload.Row == nil || payload.Column == nil {
		return that.sendError(c, msg.Action, fmt.Errorf("%w: row and column are required", errMissingField))
	}

	if _, err = that.games.PlayMove(ctx, c.gameID, *payload.Row, *payload.Column); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	return nil
}

func (that *Server) handleJump(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(c, msg.Action, err)
	}

	if payload.Destination == nil {
		return that.sendError(c, msg.Action, fmt.Errorf("%w: destination is required", errMissingField))
	}

	if _, err = that.games.JumpToMove(ctx, c.gameID, *payload.Destination); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	return nil
}

func (that *Server) handleReset(ctx context.Context, c *client, msg *Message) error {
	if _, err := that.games.Reset(ctx, c.gameID); err != nil {
		return that.sendError(c, msg.Action, err)
	}

	return nil
}

// handleView answers the sender only; with a pointer it shows that point of history
// without moving the game's own pointer.
func (that *Server) handleView(ctx context.Context, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		return that.sendError(c, msg.Action, err)
	}

	if payload.Pointer == nil {
		view, err := that.games.GetView(ctx, c.gameID)
		if err != nil {
			return that.sendError(c, msg.Action, err)
		}

		return that.sendState(c, view)
	}

	view, err := that.games.ViewAt(ctx, c.gameID, *payload.Pointer)
	if err != nil {
		return that.sendError(c, msg.Action, err)
	}

	return that.sendState(c, view)
}
