package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
)

const (
	labelGameStart = "Go to game start"
	labelMove      = "Go to move #%d"
)

// DerivedView builds the view of the game as it stood after the first pointer
// moves. It reads only the ledger, so it can be called for any point in history.
func DerivedView(game *entity.Game, pointer int) (*entity.View, error) {
	if err := validatePointer(game, pointer); err != nil {
		return nil, err
	}

	active := game.Moves[:pointer]

	view := &entity.View{
		ID:         game.ID,
		NextPlayer: entity.PlayerForMove(pointer),
		Winner:     ComputeWinner(active),
		Pointer:    pointer,
		Total:      len(game.Moves),
		Replaying:  pointer < len(game.Moves),
		History:    buildHistory(game.Moves, pointer),
	}

	for _, move := range active {
		view.Board[move.Row][move.Column] = move.Player
	}

	switch {
	case view.Winner != entity.EmptyCell:
		view.Status = entity.StatusFinished
		view.Message = "Winner: " + view.Winner
	case pointer == entity.CellCount:
		view.Status = entity.StatusDraw
		view.Message = "Draw"
	default:
		view.Status = entity.StatusOngoing
		view.Message = "Next player: " + view.NextPlayer
	}

	return view, nil
}

func buildHistory(moves []entity.Move, pointer int) []entity.HistoryEntry {
	history := make([]entity.HistoryEntry, 0, len(moves)+1)
	history = append(history, entity.HistoryEntry{
		Number:  0,
		Label:   labelGameStart,
		Current: pointer == 0,
	})

	for i := range moves {
		move := moves[i]
		history = append(history, entity.HistoryEntry{
			Number:  i + 1,
			Label:   fmt.Sprintf(labelMove, i+1),
			Move:    &move,
			Current: pointer == i+1,
		})
	}

	return history
}
