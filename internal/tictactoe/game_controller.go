package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
)

// PlayMove places the next player's mark at (row, column) after the active prefix.
// Moves beyond the pointer are discarded. A move on an occupied cell or after
// the active prefix is already won is ignored: played is false and the game
// is left untouched.
func PlayMove(game *entity.Game, row, column int) (bool, error) {
	if err := validateCell(row, column); err != nil {
		return false, fmt.Errorf("invalid move: %w", err)
	}

	active := game.ActiveMoves()

	if isOccupied(active, row, column) {
		return false, nil
	}

	if ComputeWinner(active) != entity.EmptyCell {
		return false, nil
	}

	move := entity.Move{
		Player: entity.PlayerForMove(game.Pointer),
		Row:    row,
		Column: column,
	}

	game.Moves = append(game.Moves[:game.Pointer:game.Pointer], move)
	game.Pointer++

	return true, nil
}

// JumpToMove moves the pointer to destination without touching the ledger.
func JumpToMove(game *entity.Game, destination int) error {
	if err := validatePointer(game, destination); err != nil {
		return err
	}

	game.Pointer = destination

	return nil
}

// Reset clears the ledger and the pointer.
func Reset(game *entity.Game) {
	game.Moves = []entity.Move{}
	game.Pointer = 0
}

// validateCell - checks that the coordinates are on the board.
func validateCell(row, column int) error {
	if row < 0 || row >= entity.GridSize || column < 0 || column >= entity.GridSize {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, column)
	}

	return nil
}

func validatePointer(game *entity.Game, pointer int) error {
	if pointer < 0 || pointer > len(game.Moves) {
		return fmt.Errorf("%w: %d not in [0, %d]", apperror.ErrInvalidJump, pointer, len(game.Moves))
	}

	return nil
}

func isOccupied(moves []entity.Move, row, column int) bool {
	for _, move := range moves {
		if move.Row == row && move.Column == column {
			return true
		}
	}
	return false
}
